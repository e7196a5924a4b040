package service

import "github.com/pedalmarket/backend/internal/model"

type conversationKey struct {
	otherID uint64
	bikeID  uint64
}

// GroupByConversation partitions a chronologically ordered message list into
// one conversation per (counterparty, bike) pair, seen from viewerID's side.
// The key is the same whichever side sent a given message, so both directions
// of an exchange land in the same bucket. Messages keep their input order
// within a bucket; buckets come out in first-contact order.
//
// A message the viewer sent to themselves has no real counterparty; the
// receiver is used so the function stays total.
func GroupByConversation(messages []model.Message, viewerID uint64) []model.Conversation {
	index := make(map[conversationKey]int)
	conversations := make([]model.Conversation, 0)

	for _, m := range messages {
		other := m.Sender
		if m.Sender.ID == viewerID {
			other = m.Receiver
		}

		k := conversationKey{otherID: other.ID, bikeID: m.BikeID}
		i, ok := index[k]
		if !ok {
			i = len(conversations)
			index[k] = i
			conversations = append(conversations, model.Conversation{OtherUser: other, Bike: m.Bike})
		}
		conversations[i].Messages = append(conversations[i].Messages, m)
	}

	return conversations
}
