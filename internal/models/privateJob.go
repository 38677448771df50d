package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PrivateJob struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PostName    string             `bson:"postName" json:"postName"`
	Description string             `bson:"description" json:"description"`
	Location    string             `bson:"location" json:"location"`
	JobRole     string             `bson:"jobRole" json:"jobRole"`
	Requirement []string           `bson:"Requirement" json:"Requirement"`
	Salary      string             `bson:"salary" json:"salary"`
	Benefits    []string           `bson:"Benefits" json:"Benefits"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
