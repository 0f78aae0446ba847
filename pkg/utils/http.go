package utils

import (
	"encoding/base64"
)

// BasicAuth builds the Authorization header value for key/secret APIs
// (Razorpay uses plain HTTP basic auth).
func BasicAuth(keyID, keySecret string) string {
	credentials := base64.StdEncoding.EncodeToString([]byte(keyID + ":" + keySecret))
	return "Basic " + credentials
}
