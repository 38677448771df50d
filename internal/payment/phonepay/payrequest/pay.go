package payrequest

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"

	"naukrivacancy/internal/payment/phonepay"
)

func getPayRequestEndPoint() string {
	return phonepay.GetBaseEndpoint() + phonepay.PayEndPoint
}

func getDefaultPayRedirectUrl() string {
	return os.Getenv("PROJECT_URL") + "/payment/callback"
}

func getDefaultPayCallbackUrl() string {
	return os.Getenv("PROJECT_URL") + "/payment/callback"
}

// generatePayRequestSignature builds the X-VERIFY header:
// sha256(base64Payload + endpoint + saltKey) + "###" + saltIndex.
func generatePayRequestSignature(payload []byte) (string, string, error) {
	saltKey := os.Getenv("PHONEPE_SALT_KEY")
	saltIndex := os.Getenv("PHONEPE_SALT_INDEX")

	if saltKey == "" {
		return "", "", fmt.Errorf("salt key is not provided")
	}
	if saltIndex == "" {
		saltIndex = "1"
	}

	encodedPayload := base64.StdEncoding.EncodeToString(payload)
	toHash := encodedPayload + phonepay.PayEndPoint + saltKey
	hash := sha256.Sum256([]byte(toHash))
	return fmt.Sprintf("%x###%s", hash, saltIndex), encodedPayload, nil
}
