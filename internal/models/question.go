package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LevelEasy      = "Easy"
	LevelModerate  = "Moderate"
	LevelDifficult = "Difficult"
)

const (
	CategoryFree    = "Free"
	CategoryQuizzes = "Quizzes"
	CategoryMock    = "Mock"
)

// Question carries exactly four options; CorrectOption indexes into them.
type Question struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	QuestionName  string             `bson:"questionName" json:"questionName"`
	Options       []string           `bson:"options" json:"options"`
	CorrectOption int                `bson:"correctOption" json:"correctOption"`
	Explanation   string             `bson:"explanation" json:"explanation"`
	Level         string             `bson:"level" json:"level"`
	Category      string             `bson:"category" json:"category"`
	Marks         float64            `bson:"marks" json:"marks"`
	NegativeMarks float64            `bson:"negativeMarks" json:"negativeMarks"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
