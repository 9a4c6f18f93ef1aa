package match

import (
	"regexp"
	"strings"
)

// FieldType selects which normalizer and comparator apply to a value.
type FieldType string

const (
	FieldName    FieldType = "name"
	FieldPhone   FieldType = "phone"
	FieldDOB     FieldType = "dob"
	FieldAddress FieldType = "address"
	FieldEmail   FieldType = "email"
	FieldCompany FieldType = "company"
)

// Fields lists every recognized field type in display order.
var Fields = []FieldType{FieldName, FieldPhone, FieldDOB, FieldAddress, FieldEmail, FieldCompany}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonDigitRe   = regexp.MustCompile(`\D+`)
	dobSepRe     = regexp.MustCompile(`[/.]`)
)

// Normalize canonicalizes a raw field value. ok is false when the value is
// absent: nil, empty or whitespace-only input, or a phone value with no
// digits at all. Normalization never fails on malformed input; worst case the
// trimmed, lowercased original comes back unchanged.
func Normalize(ft FieldType, raw *string) (norm string, ok bool) {
	if raw == nil {
		return "", false
	}
	v := strings.TrimSpace(*raw)
	if v == "" {
		return "", false
	}
	switch ft {
	case FieldPhone:
		digits := nonDigitRe.ReplaceAllString(v, "")
		if digits == "" {
			return "", false
		}
		// Keep the last 10 digits to drop country codes like a leading 91.
		if len(digits) >= 10 {
			digits = digits[len(digits)-10:]
		}
		return digits, true
	case FieldDOB:
		// Canonical "-"-separated form. Components are never reordered, so
		// differing day/month/year conventions stay distinct values.
		return dobSepRe.ReplaceAllString(v, "-"), true
	case FieldEmail:
		return strings.ToLower(v), true
	default:
		// name, address, company: free text.
		return whitespaceRe.ReplaceAllString(strings.ToLower(v), " "), true
	}
}
