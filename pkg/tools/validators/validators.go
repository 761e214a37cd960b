package validators

import (
	"regexp"
	"strings"
)

const (
	passwordValRegexStr = "^.{5,128}$"
	emailValRegexStr    = "^[^\\s@]+@[^\\s@]+\\.[^\\s@]+$"
)

var (
	passwordRegex = regexp.MustCompile(passwordValRegexStr)
	emailRegex    = regexp.MustCompile(emailValRegexStr)
)

func Password(password string) bool {
	return passwordRegex.MatchString(password)
}

func Email(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizeEmail lowercases the domain part of an email address.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
