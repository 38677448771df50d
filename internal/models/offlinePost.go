package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OfflinePost struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PostName      string             `bson:"postName" json:"postName"`
	Description   string             `bson:"description" json:"description"`
	Qualification string             `bson:"qualification" json:"qualification"`
	AgeLimit      string             `bson:"ageLimit" json:"ageLimit"`
	LastDate      string             `bson:"lastDate" json:"lastDate"`
	Details       string             `bson:"details" json:"details"`
	Price         float64            `bson:"price" json:"price"`
	Link          string             `bson:"link" json:"link"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
