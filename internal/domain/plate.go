package domain

import "strings"

// NormalizePlate canonicalizes a vehicle plate for storage and comparison.
// Every lookup and every write must go through this, otherwise a plate
// stored as "abc123 " will never match a lookup for "ABC123".
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
