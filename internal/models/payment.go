package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentPending = "PENDING"
	PaymentSuccess = "SUCCESS"
	PaymentFailed  = "FAILED"
)

// Payment mirrors the gateway order record; the amount fields are kept
// as strings the way the orders were historically stored.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderID       string             `bson:"id" json:"id"`
	Amount        string             `bson:"amount" json:"amount"`
	AmountPaid    string             `bson:"amount_paid" json:"amount_paid"`
	Attempts      string             `bson:"attempts" json:"attempts"`
	CreatedAtRaw  string             `bson:"created_at" json:"created_at"`
	Currency      string             `bson:"currency" json:"currency"`
	Receipt       string             `bson:"receipt" json:"receipt"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
