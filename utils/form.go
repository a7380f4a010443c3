package utils

import "strconv"

// ParseFormBool interprets a form field as a boolean. Values accepted by
// strconv.ParseBool ("1", "t", "true", "0", "false", ...) are taken at face
// value; an absent, empty, or unparseable value is false. Unlike naive
// truthiness, "0" and "false" do not count as true.
func ParseFormBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
