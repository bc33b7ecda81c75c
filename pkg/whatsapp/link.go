// Package whatsapp builds wa.me deep links. Delivery happens out of band in
// the operator's browser; there is no API call and no delivery confirmation.
package whatsapp

import (
	"net/url"
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// DeepLink returns https://wa.me/<digits-only-phone>?text=<url-encoded-message>
// with the message pre-filled.
func DeepLink(phone, message string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	// QueryEscape encodes spaces as '+'; wa.me expects %20.
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + digits + "?text=" + text
}
