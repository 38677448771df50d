package payrequest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	httpClient "naukrivacancy/internal/utility/http"
)

// PayRequest creates a PhonePe pay-page order and returns the hosted
// payment URL the client should be redirected to.
func PayRequest(payload TransactionRequest) (TransactionResponse, error) {

	// build request
	requestPayload, err := buildRequestPayload(payload)
	if err != nil {
		return TransactionResponse{}, fmt.Errorf("error: %s", err)
	}

	payloadJSON, err := json.Marshal(requestPayload)
	if err != nil {
		return TransactionResponse{}, fmt.Errorf("error: %s", err)
	}

	// generate signature
	xVerify, encodedPayload, err := generatePayRequestSignature(payloadJSON)
	if err != nil {
		return TransactionResponse{}, fmt.Errorf("error: %s", err)
	}

	body, err := json.Marshal(FinalRequestBody{Request: encodedPayload})
	if err != nil {
		return TransactionResponse{}, fmt.Errorf("error: %s", err)
	}

	// make post request to get url
	client := httpClient.NewHttpClient()

	response, err := client.Post(getPayRequestEndPoint(), strings.NewReader(string(body)),
		httpClient.WithHeader("X-VERIFY", xVerify),
		httpClient.WithHeader("X-MERCHANT-ID", os.Getenv("PHONEPE_MERCHANT_ID")))
	if err != nil {
		return TransactionResponse{}, fmt.Errorf("error: %s", err)
	}

	var paymentResp paymentResponse
	if err := json.Unmarshal([]byte(response), &paymentResp); err != nil {
		return TransactionResponse{}, fmt.Errorf("failed to unmarshal response: %s", err)
	}

	redirectUrl := paymentResp.Data.InstrumentResponse.RedirectInfo.URL
	if redirectUrl == "" {
		return TransactionResponse{}, fmt.Errorf("no redirect url in gateway response: %s", paymentResp.Code)
	}

	return TransactionResponse{RedirectUrl: redirectUrl}, nil
}
