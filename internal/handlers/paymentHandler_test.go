package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePaymentRequiresPhoneAmountAndNotes(t *testing.T) {
	cases := []string{
		`{}`,
		`{"phone":"9876543210"}`,
		`{"phone":"9876543210","amount":10}`,
		`{"amount":10,"notes":{"Id":"abc"}}`,
	}
	for _, body := range cases {
		rec := httptest.NewRecorder()
		MakePayment(rec, jsonRequest(http.MethodPost, "/api/v1/payment/makePayment", body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Equal(t, "Phone and amount required", errorBody(t, rec))
	}
}

func TestMakePaymentRejectsInvalidAmount(t *testing.T) {
	cases := []string{
		`{"phone":"9876543210","amount":0,"notes":{"Id":"abc"}}`,
		`{"phone":"9876543210","amount":-5,"notes":{"Id":"abc"}}`,
		`{"phone":"9876543210","amount":"ten","notes":{"Id":"abc"}}`,
	}
	for _, body := range cases {
		rec := httptest.NewRecorder()
		MakePayment(rec, jsonRequest(http.MethodPost, "/api/v1/payment/makePayment", body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Equal(t, "Invalid amount", errorBody(t, rec))
	}
}

func TestNewOrderIDShape(t *testing.T) {
	id := newOrderID()
	parts := strings.Split(id, "_")

	assert.Equal(t, "ORDER", parts[0])
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 9)
}

func TestAmountValue(t *testing.T) {
	v, ok := amountValue(float64(49))
	assert.True(t, ok)
	assert.Equal(t, 49.0, v)

	v, ok = amountValue("49.5")
	assert.True(t, ok)
	assert.Equal(t, 49.5, v)

	_, ok = amountValue("ten")
	assert.False(t, ok)

	_, ok = amountValue(nil)
	assert.False(t, ok)
}
