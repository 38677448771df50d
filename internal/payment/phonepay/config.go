package phonepay

import (
	"os"
)

const (
	// ProdHostUrl Production Details
	ProdHostUrl = "https://api.phonepe.com/apis/hermes"

	// UatHostUrl UAT/Sandbox Details
	UatHostUrl = "https://api-preprod.phonepe.com/apis/pg-sandbox"

	// PayEndPoint End point for pay request
	PayEndPoint = "/pg/v1/pay"
)

func GetBaseEndpoint() string {
	switch os.Getenv("PHONEPE_ENV") {
	case "production":
		return ProdHostUrl
	default:
		return UatHostUrl
	}
}
