// Package whatsapp builds wa.me message links: opening one starts a chat
// with the business number, message text prefilled.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
)

const host = "https://wa.me"

// MessageLink returns https://wa.me/<number>?text=<encoded message>.
func MessageLink(businessNumber, message string) (string, error) {

	if businessNumber == "" {
		return "", errors.New("business number is required")
	}

	return fmt.Sprintf("%s/%s?text=%s", host, businessNumber, url.QueryEscape(message)), nil
}
