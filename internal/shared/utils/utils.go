package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// DeriveUsername builds the canonical login name for a seat: the district
// name with all whitespace removed, followed by the constituency number.
// "Dhaka" + 5 → "Dhaka5", "Cox's Bazar" + 3 → "Cox'sBazar3".
func DeriveUsername(districtName string, constituencyNo int) string {
	var b strings.Builder
	b.Grow(len(districtName) + 3)
	for _, r := range districtName {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	b.WriteString(strconv.Itoa(constituencyNo))
	return b.String()
}

// SlugFromUsername is the public URL form of a username.
func SlugFromUsername(username string) string {
	return strings.ToLower(username)
}
