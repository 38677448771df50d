package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LabelDate struct {
	Label string `bson:"label" json:"label"`
	Date  string `bson:"date" json:"date"`
}

type LabelFee struct {
	Label string `bson:"label" json:"label"`
	Fee   string `bson:"fee" json:"fee"`
}

type LabelAge struct {
	Label string `bson:"label" json:"label"`
	Age   string `bson:"age" json:"age"`
}

type LabelLink struct {
	Label string `bson:"label" json:"label"`
	Link  string `bson:"link" json:"link"`
}

// InformationEntry holds a free-form table as rows of columns of cells.
// Shape beyond "3D string array" is never validated.
type InformationEntry struct {
	Values [][][]string `bson:"values" json:"values"`
}

type InformationSection struct {
	InformationName string             `bson:"informationName" json:"informationName"`
	Information     []InformationEntry `bson:"Information" json:"Information"`
}

type JobPost struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	PostName            string               `bson:"postName" json:"postName"`
	Description         string               `bson:"description" json:"description"`
	NotificationLink    string               `bson:"notificationLink" json:"notificationLink"`
	ImportantDates      []LabelDate          `bson:"importantDates" json:"importantDates"`
	ApplicationFee      []LabelFee           `bson:"applicationFee" json:"applicationFee"`
	AgeLimit            []LabelAge           `bson:"ageLimit" json:"ageLimit"`
	ResultLink          []LabelLink          `bson:"resultLink" json:"resultLink"`
	AdmitCardLink       []LabelLink          `bson:"admitCardLink" json:"admitCardLink"`
	AnswerKeyLink       []LabelLink          `bson:"answerKeyLink" json:"answerKeyLink"`
	AdmissionLink       []LabelLink          `bson:"admissionLink" json:"admissionLink"`
	ApplyLink           []LabelLink          `bson:"applyLink" json:"applyLink"`
	InformationSections []InformationSection `bson:"informationSections" json:"informationSections"`
	State               string               `bson:"state" json:"state"`
	BeginDate           time.Time            `bson:"beginDate" json:"beginDate"`
	LastDate            *time.Time           `bson:"lastDate,omitempty" json:"lastDate,omitempty"`
	TotalPost           string               `bson:"totalPost" json:"totalPost"`
	CreatedAt           time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time            `bson:"updatedAt" json:"updatedAt"`
}
