package utils

import (
	"strings"
)

// NormalizarNombre canonicalizes user-supplied names (category lookup key):
// lowercased and trimmed, so "Lácteos " and " lácteos" collide.
func NormalizarNombre(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
