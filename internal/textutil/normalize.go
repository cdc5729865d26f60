// Package textutil provides byte-level text normalization and junk-token
// filtering shared by the tokenizer and the query lexer, so that indexing
// and querying normalize identically.
package textutil

// Normalize lowercases ASCII letters and a specific Cyrillic byte range
// in place, returning the same slice. The transform is length-preserving:
// it never grows or shrinks the buffer, only rewrites bytes.
//
// Rules, applied left to right over byte positions:
//   - ASCII 'A'..'Z' (0x41-0x5A): add 0x20.
//   - A 0xD0 lead byte followed by a trailing byte in 0x90-0x9F: add 0x20
//     to the trailing byte (Cyrillic capital А-П range).
//   - A 0xD0 lead byte followed by a trailing byte in 0xA0-0xAF: rewrite
//     the pair to (0xD1, trailing-0x20) (Cyrillic capital Р-Я range).
//   - A 0xD0 lead byte followed by trailing byte 0x81: rewrite to
//     (0xD1, 0x91) (Cyrillic capital Ё).
//   - All other bytes pass through unchanged.
func Normalize(b []byte) []byte {
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b[i] = c + 0x20
		case c == 0xD0 && i+1 < len(b):
			next := b[i+1]
			switch {
			case next >= 0x90 && next <= 0x9F:
				b[i+1] = next + 0x20
				i++
			case next >= 0xA0 && next <= 0xAF:
				b[i] = 0xD1
				b[i+1] = next - 0x20
				i++
			case next == 0x81:
				b[i] = 0xD1
				b[i+1] = 0x91
				i++
			}
		}
	}
	return b
}
