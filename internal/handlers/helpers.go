package handlers

import (
	"net/http"
	"strconv"
	"unicode"
)

// queryInt parses a positive integer query parameter, falling back to
// the endpoint's default.
func queryInt(r *http.Request, name string, def int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || value <= 0 {
		return def
	}
	return value
}

type requiredField struct {
	name    string
	present bool
}

// firstMissing returns the "<Field> is required" message for the first
// absent field, or "" when all are present.
func firstMissing(fields []requiredField) string {
	for _, field := range fields {
		if !field.present {
			return capitalize(field.name) + " is required"
		}
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
