package worksheet

import "strings"

// NormalizePlate canonicalizes a license plate: spaces and hyphens are
// stripped and letters upper-cased. The same function is applied to user
// input and to every lookup, create, and submit call, so plate equality is
// normalization-invariant. It is a pure function and idempotent.
func NormalizePlate(plate string) string {
	var b strings.Builder
	b.Grow(len(plate))
	for _, r := range plate {
		switch r {
		case ' ', '\t', '-':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
