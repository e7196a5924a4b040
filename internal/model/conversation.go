package model

// Conversation groups the messages one user exchanged with one counterparty
// about one bike. It is derived from the message store per request and never
// persisted.
type Conversation struct {
	OtherUser User      `json:"otherUser"`
	Bike      Bike      `json:"bike"`
	Messages  []Message `json:"messages"`
}
