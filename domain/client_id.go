package domain

import "strings"

// GenerateClientID derives the pseudonymous id of an anonymous visitor from
// its IP address: the string is reversed and '.' and ':' are removed.
// The result is trivially invertible and must not be used as a secret.
func GenerateClientID(ipAddress string) string {
	runes := []rune(ipAddress)
	var b strings.Builder
	b.Grow(len(runes))
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == '.' || runes[i] == ':' {
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
