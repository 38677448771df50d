package payrequest

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naukrivacancy/internal/payment/phonepay"
)

func TestGeneratePayRequestSignature(t *testing.T) {
	os.Setenv("PHONEPE_SALT_KEY", "salt-key")
	os.Setenv("PHONEPE_SALT_INDEX", "2")

	payload := []byte(`{"merchantId":"M1"}`)
	xVerify, encoded, err := generatePayRequestSignature(payload)
	require.NoError(t, err)

	assert.Equal(t, base64.StdEncoding.EncodeToString(payload), encoded)

	hash := sha256.Sum256([]byte(encoded + phonepay.PayEndPoint + "salt-key"))
	assert.Equal(t, fmt.Sprintf("%x###2", hash), xVerify)
}

func TestGeneratePayRequestSignatureDefaultsSaltIndex(t *testing.T) {
	os.Setenv("PHONEPE_SALT_KEY", "salt-key")
	os.Unsetenv("PHONEPE_SALT_INDEX")

	xVerify, _, err := generatePayRequestSignature([]byte("payload"))
	require.NoError(t, err)
	assert.Contains(t, xVerify, "###1")
}

func TestGeneratePayRequestSignatureRequiresSaltKey(t *testing.T) {
	os.Unsetenv("PHONEPE_SALT_KEY")

	_, _, err := generatePayRequestSignature([]byte("payload"))
	assert.Error(t, err)
}

func TestBuildRequestPayload(t *testing.T) {
	os.Setenv("PHONEPE_MERCHANT_ID", "M1")
	redirect := "https://example.com/cb?jobLink=%2FQuiz%2Fabc"

	req, err := buildRequestPayload(TransactionRequest{
		UID:           "1",
		Amount:        4900,
		MobileNumber:  "9876543210",
		TransactionID: "ORDER_1_abc",
		RedirectURL:   &redirect,
		CallbackURL:   &redirect,
	})
	require.NoError(t, err)

	assert.Equal(t, "M1", req.MerchantID)
	assert.Equal(t, "ORDER_1_abc", req.MerchantTransactionID)
	assert.Equal(t, 4900.0, req.Amount)
	assert.Equal(t, redirect, req.RedirectURL)
	assert.Equal(t, redirect, req.CallbackURL)
	assert.Equal(t, "POST", req.RedirectMode)
	assert.Equal(t, "PAY_PAGE", req.PaymentInstrument.Type)
}

func TestBuildRequestPayloadRequiresMerchantID(t *testing.T) {
	os.Unsetenv("PHONEPE_MERCHANT_ID")

	_, err := buildRequestPayload(TransactionRequest{TransactionID: "ORDER_1_abc"})
	assert.Error(t, err)
}
