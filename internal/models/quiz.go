package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WinningAmount and Price accept either a number or a string, matching
// the documents already in the collection.
type Quiz struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	TotalQuestions  int                `bson:"totalQuestions" json:"totalQuestions"`
	WinningAmount   interface{}        `bson:"winningAmount" json:"winningAmount"`
	Price           interface{}        `bson:"price" json:"price"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	Category        string             `bson:"category" json:"category"`
	StartDateTime   time.Time          `bson:"startDateTime" json:"startDateTime"`
	ExpireDateTime  time.Time          `bson:"expireDateTime" json:"expireDateTime"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
