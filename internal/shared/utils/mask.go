package utils

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail hides the local part of an address for log output, keeping its
// first character: "anna@example.com" becomes "a***@example.com".
func MaskEmail(address string) string {
	address = strings.TrimSpace(address)
	at := strings.LastIndexByte(address, '@')
	if at <= 0 || at == len(address)-1 {
		return "***"
	}
	first, _ := utf8.DecodeRuneInString(address)
	return string(first) + "***" + address[at:]
}
