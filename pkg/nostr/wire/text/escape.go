// Package text implements the RFC8259 string escaping required by the
// nostr canonical event encoding. The output must match what mainstream
// JSON serializers emit byte for byte, as it feeds the event ID hash: only
// the quotation mark, reverse solidus and control characters are escaped,
// with the single-letter short forms where RFC8259 defines them.
package text

// EscapeString appends s to dst as a double-quoted JSON string.
func EscapeString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			// quotation mark
			dst = append(dst, '\\', '"')
		case c == '\\':
			// reverse solidus
			dst = append(dst, '\\', '\\')
		case c >= 0x20:
			// default, the rest below are control characters
			dst = append(dst, c)
		case c == 0x08:
			dst = append(dst, '\\', 'b')
		case c == 0x09:
			dst = append(dst, '\\', 't')
		case c == 0x0a:
			dst = append(dst, '\\', 'n')
		case c == 0x0c:
			dst = append(dst, '\\', 'f')
		case c == 0x0d:
			dst = append(dst, '\\', 'r')
		case c < 0x10:
			dst = append(dst, '\\', 'u', '0', '0', '0', hexDigit(c))
		default:
			dst = append(dst, '\\', 'u', '0', '0', '1', hexDigit(c&0xf))
		}
	}
	dst = append(dst, '"')
	return dst
}

func hexDigit(c byte) byte {
	if c < 10 {
		return '0' + c
	}
	return 'a' + c - 10
}
