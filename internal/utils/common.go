// Package utils holds small helpers shared by config, script and ui.
package utils

import (
	"strconv"
	"strings"
)

// BoolFromString reports whether an environment value means "on". Besides
// the forms strconv.ParseBool accepts, "yes" and "on" count as true.
func BoolFromString(s string) bool {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "yes" || v == "on" {
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// JSONPointerToPath renders a JSON Pointer the way script errors print field
// locations: "#/actions/0/direction" becomes "actions[0].direction".
func JSONPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")

	var b strings.Builder
	for _, token := range strings.Split(ptr, "/") {
		token = pointerUnescaper.Replace(token)
		switch {
		case token == "":
		case isIndex(token):
			b.WriteString("[" + token + "]")
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(token)
		}
	}
	return b.String()
}

func isIndex(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
