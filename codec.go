package searchparams

import "strings"

// EncodeComponent percent-encodes the reserved characters of s with
// their uppercase %XX escapes. Only the fixed set in the escape table
// is rewritten; everything else passes through untouched. Note "?" is
// deliberately not encoded while DecodeComponent still recognizes
// "%3F", an asymmetry kept from the reference behavior.
func EncodeComponent(s string) string {
	for _, e := range encodes {
		s = strings.ReplaceAll(s, e.sym, e.code)
	}
	return s
}

// DecodeComponent restores the characters escaped by EncodeComponent.
// Each escape is substituted in a single left to right pass, "%25"
// last, so a literal percent never corrupts a later match. Escapes
// outside the table are left as they are.
func DecodeComponent(s string) string {
	for _, e := range decodes {
		s = strings.ReplaceAll(s, e.code, e.sym)
	}
	return s
}
