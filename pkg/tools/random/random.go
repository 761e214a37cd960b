package random

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// String returns a random string of n characters
func String(n int) string {
	var sb strings.Builder
	k := len(alphabet)
	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}
	return sb.String()
}

// Email returns a random email
func Email() string {
	return String(10) + "@example.com"
}

// StringSlice creates a slice of length n containing random strings
func StringSlice(n int) []string {
	ss := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ss = append(ss, String(10))
	}
	return ss
}

// Int returns a random integer between min and max
func Int(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// Price returns a random price with two decimal places that fits NUMERIC(5,2)
func Price() decimal.Decimal {
	return decimal.RequireFromString(fmt.Sprintf("%d.%02d", Int(0, 999), Int(0, 99)))
}

// URL returns a random https link
func URL() string {
	return fmt.Sprintf("https://%s.com/%s.pdf", String(8), String(6))
}
