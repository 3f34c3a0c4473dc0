package provider

import (
	"fmt"
	"strings"
)

// ClassifyError maps a raised vendor error onto a fixed, provider-named,
// user-facing message. Matching is case-insensitive substring search over
// the error text, evaluated in a fixed order: credentials, rate limits,
// connectivity, malformed request, upstream outage. Anything that matches
// no category surfaces as-is.
func ClassifyError(p Provider, err error) string {
	name := DisplayName(p)
	msg := strings.ToLower(err.Error())

	switch {
	case containsAny(msg, "api key", "invalid api key", "unauthorized"):
		return CredentialMessage(p)
	case containsAny(msg, "rate limit", "quota", "too many requests"):
		return fmt.Sprintf("%s rate limit exceeded. Please wait a moment and try again.", name)
	case containsAny(msg, "network", "connection", "timeout"):
		return fmt.Sprintf("Network error while contacting %s. Please check your internet connection and try again.", name)
	case containsAny(msg, "400", "bad request"):
		return fmt.Sprintf("%s rejected the request as invalid. Please check the model name and try again.", name)
	case containsAny(msg, "500", "internal server error"):
		return fmt.Sprintf("%s is temporarily unavailable. Please try again later.", name)
	default:
		return err.Error()
	}
}

// CredentialMessage is the fixed invalid-key message. Adapters use it
// directly when the vendor call itself comes back with an authentication
// status code, skipping the substring classifier.
func CredentialMessage(p Provider) string {
	return fmt.Sprintf("Invalid %s API key. Please check your API key and try again.", DisplayName(p))
}

// NoTextMessage is the fixed message for a structurally valid vendor
// response that carries no usable text.
func NoTextMessage(p Provider) string {
	return fmt.Sprintf("No text was generated by %s. Please try again.", DisplayName(p))
}

// DisplayName is the provider tag as it appears in user-facing messages.
func DisplayName(p Provider) string { return strings.ToUpper(string(p)) }

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
