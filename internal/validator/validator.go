package validator

import (
	"regexp"
	"strings"
	"unicode"
)

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError keeps the first message recorded for a field.
func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// IsSpace reports whether r is whitespace or a line terminator as browsers
// define them. Unlike unicode.IsSpace it includes U+FEFF and excludes U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func NotBlank(s string) bool {
	return strings.TrimFunc(s, IsSpace) != ""
}

// MinChars counts UTF-16 code units, so a character outside the Basic
// Multilingual Plane counts twice.
func MinChars(s string, n int) bool {
	count := 0
	for _, r := range s {
		count++
		if r > 0xFFFF {
			count++
		}
	}
	return count >= n
}

func Matches(s string, rx *regexp.Regexp) bool {
	return rx.MatchString(s)
}
