package api

import (
	"math/rand"
	"regexp"
	"strings"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 8

// generateMatchCode creates a short alphanumeric code for joining a live
// match scoreboard.
func generateMatchCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}

var matchCodeRegex = regexp.MustCompile("^[A-Z0-9]{8}$")

func normalizeMatchCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
