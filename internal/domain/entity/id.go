package entity

import (
	"strings"

	"github.com/google/uuid"
)

// NewID genera un identificador con prefijo, ej. NewID("booking", 12) ->
// "booking_3f9c2a71d0b4". n acota los caracteres hex tomados del UUID.
func NewID(prefix string, n int) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	if n > 0 && n < len(hex) {
		hex = hex[:n]
	}
	return prefix + "_" + hex
}
