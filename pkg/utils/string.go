package utils

import "strings"

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// NormalizeWhitespace replaces runs of whitespace with a single space.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// StripURLNoise removes backticks, quotes and whitespace that stored URLs
// sometimes carry.
func (s *StringHelper) StripURLNoise(str string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '`', '\'', '"', ' ', '\t', '\n', '\r', '\v', '\f':
			return -1
		}

		return r
	}, str)
}
