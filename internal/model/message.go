package model

import "time"

type Message struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID   uint64    `gorm:"column:sender_id;index;not null" json:"senderId"`
	Sender     User      `gorm:"foreignKey:SenderID" json:"sender"`
	ReceiverID uint64    `gorm:"column:receiver_id;index;not null" json:"receiverId"`
	Receiver   User      `gorm:"foreignKey:ReceiverID" json:"receiver"`
	BikeID     uint64    `gorm:"column:bike_id;index;not null" json:"bikeId"`
	Bike       Bike      `gorm:"foreignKey:BikeID" json:"bike"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	// SentAt is assigned by the message service at save time, never by callers.
	SentAt     time.Time `gorm:"column:sent_at;index" json:"sentAt"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}
