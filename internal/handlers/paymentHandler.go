package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"naukrivacancy/database"
	"naukrivacancy/internal/models"
	"naukrivacancy/internal/payment/phonepay/payrequest"
	utilhttp "naukrivacancy/internal/utility/http"
)

var paymentCollection *mongo.Collection = database.OpenCollection(database.Client, "payment")

const orderIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func newOrderID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderIDAlphabet[rand.Intn(len(orderIDAlphabet))]
	}
	return fmt.Sprintf("ORDER_%d_%s", time.Now().UnixMilli(), suffix)
}

func projectURL() string {
	if u := os.Getenv("PROJECT_URL"); u != "" {
		return u
	}
	return "http://localhost:3456/api/v1"
}

type makePaymentRequest struct {
	Phone  string      `json:"phone"`
	Amount interface{} `json:"amount"`
	Notes  *struct {
		ID      string `json:"Id"`
		JobLink string `json:"jobLink"`
	} `json:"notes"`
}

// amountValue tolerates both numeric and string amounts in the body.
func amountValue(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

// MakePayment opens a PhonePe pay-page order for a note or quiz
// purchase and records it as PENDING until the callback lands.
func MakePayment(w http.ResponseWriter, r *http.Request) {
	var req makePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Phone and amount required")
		return
	}
	if req.Phone == "" || req.Amount == nil || req.Notes == nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Phone and amount required")
		return
	}

	amount, ok := amountValue(req.Amount)
	if !ok || amount <= 0 {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	orderID := newOrderID()
	jobLink := req.Notes.JobLink
	if jobLink == "" {
		jobLink = "/Quiz/" + req.Notes.ID
	}
	callbackURL := fmt.Sprintf("%s/payment/callback?jobLink=%s", projectURL(), url.QueryEscape(jobLink))

	now := time.Now()
	payment := models.Payment{
		ID:            primitive.NewObjectID(),
		OrderID:       orderID,
		Amount:        fmt.Sprintf("%v", req.Amount),
		AmountPaid:    "0",
		Attempts:      "0",
		CreatedAtRaw:  now.Format(time.RFC3339),
		Currency:      "INR",
		Receipt:       "receipt_" + orderID,
		TransactionID: orderID,
		Status:        models.PaymentPending,
		Phone:         req.Phone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	if _, err := paymentCollection.InsertOne(ctx, payment); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to save payment data")
		return
	}

	resp, err := payrequest.PayRequest(payrequest.TransactionRequest{
		UID:           "1",
		Amount:        amount * 100,
		MobileNumber:  req.Phone,
		TransactionID: orderID,
		RedirectURL:   &callbackURL,
		CallbackURL:   &callbackURL,
	})
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"redirectUrl":   resp.RedirectUrl,
		"transactionId": orderID,
	}, "Payment order created successfully")
}

type paymentCallbackRequest struct {
	TransactionID string `json:"transactionId"`
	Code          string `json:"code"`
}

// PaymentCallback is what PhonePe POSTs after the user completes or
// abandons the pay page. On success the user is redirected to the
// purchased resource.
func PaymentCallback(w http.ResponseWriter, r *http.Request) {
	var req paymentCallbackRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	jobLink := r.URL.Query().Get("jobLink")

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var payment models.Payment
	if err := paymentCollection.FindOne(ctx, bson.M{"transactionId": req.TransactionID}).Decode(&payment); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Payment not found")
		return
	}

	status := models.PaymentFailed
	if req.Code == "PAYMENT_SUCCESS" {
		status = models.PaymentSuccess
	}
	_, err := paymentCollection.UpdateOne(ctx,
		bson.M{"_id": payment.ID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}})
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to update payment")
		return
	}

	if status == models.PaymentSuccess && jobLink != "" {
		if strings.HasPrefix(jobLink, "Quiz") {
			http.Redirect(w, r, os.Getenv("PROJECT_FRONTEND_URL")+jobLink, http.StatusFound)
			return
		}
		if decoded, err := url.QueryUnescape(jobLink); err == nil {
			jobLink = decoded
		}
		http.Redirect(w, r, jobLink, http.StatusFound)
		return
	}

	http.Redirect(w, r, projectURL()+"/payment/failed", http.StatusFound)
}
