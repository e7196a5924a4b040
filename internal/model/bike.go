package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BikeType discriminates the three listing variants. The variants share every
// field; the tag is fixed at creation and only ever read.
type BikeType string

const (
	BikeTypeMountain BikeType = "Mountain"
	BikeTypeRoad     BikeType = "Road"
	BikeTypeElectric BikeType = "Electric"
)

var ErrUnsupportedBikeType = errors.New("unsupported bike type")

type Bike struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Type        BikeType  `gorm:"column:type;size:32;not null" json:"type"`
	Brand       string    `gorm:"size:120;not null" json:"brand"`
	Size        string    `gorm:"size:16;not null" json:"size"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Place       string    `gorm:"size:120" json:"place"`
	Image       []byte    `gorm:"type:mediumblob" json:"-"`
	UserID      uint64    `gorm:"column:user_id;index;not null" json:"userId"`
	// ImagePath carries the display form of Image (data URL or the default
	// placeholder). Filled by the service layer, never stored.
	ImagePath   string    `gorm:"-" json:"imagePath,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Bike) TableName() string {
	return "bikes"
}

// NewBike builds an unsaved bike of the variant named by typeTag
// (case-insensitive). The id stays zero until the record is persisted.
func NewBike(typeTag, brand, size, description string, price float64, place string, userID uint64) (*Bike, error) {
	var bt BikeType
	switch strings.ToLower(typeTag) {
	case "mountain":
		bt = BikeTypeMountain
	case "road":
		bt = BikeTypeRoad
	case "electric":
		bt = BikeTypeElectric
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBikeType, typeTag)
	}
	return &Bike{
		Type:        bt,
		Brand:       brand,
		Size:        size,
		Description: description,
		Price:       price,
		Place:       place,
		UserID:      userID,
	}, nil
}
