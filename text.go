package xmapping

import (
	"strings"
	"unicode/utf8"
)

// BytesToText maps every byte of b to the rune with the same value
// (0-255). It is a byte-for-character view, not a decoder: multi-byte
// encoded text is not reconstructed.
func BytesToText(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// TextToBytes writes one byte per rune of s, keeping only the low 8 bits
// of the code point. Runes above 0xFF lose information; invalid UTF-8
// reads as U+FFFD and becomes 0xFD.
func TextToBytes(s string) []byte {
	out := make([]byte, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, byte(r))
	}
	return out
}
