package jsonvalue

import (
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// AppendCompact appends the compact JSON encoding of v to dst: no
// insignificant whitespace, members in document order, numbers as their
// original literal, and every non-ASCII or control character escaped as
// \uXXXX (surrogate pairs above U+FFFF).
func (v Value) AppendCompact(dst []byte) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindNumber:
		return append(dst, v.s...)
	case KindString:
		return appendString(dst, v.s)
	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = e.AppendCompact(dst)
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i, m := range v.members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, m.Key)
			dst = append(dst, ':')
			dst = m.Value.AppendCompact(dst)
		}
		return append(dst, '}')
	default:
		return dst
	}
}

// CompactSize returns len(v.AppendCompact(nil)) without building the
// encoding.
func (v Value) CompactSize() int {
	switch v.kind {
	case KindNull:
		return len("null")
	case KindBool:
		if v.b {
			return len("true")
		}
		return len("false")
	case KindNumber:
		return len(v.s)
	case KindString:
		return stringSize(v.s)
	case KindArray:
		n := 2
		for i, e := range v.elems {
			if i > 0 {
				n++
			}
			n += e.CompactSize()
		}
		return n
	case KindObject:
		n := 2
		for i, m := range v.members {
			if i > 0 {
				n++
			}
			n += stringSize(m.Key) + 1 + m.Value.CompactSize()
		}
		return n
	default:
		return 0
	}
}

func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch {
		case r == '"':
			dst = append(dst, '\\', '"')
		case r == '\\':
			dst = append(dst, '\\', '\\')
		case r == '\n':
			dst = append(dst, '\\', 'n')
		case r == '\r':
			dst = append(dst, '\\', 'r')
		case r == '\t':
			dst = append(dst, '\\', 't')
		case r == '\b':
			dst = append(dst, '\\', 'b')
		case r == '\f':
			dst = append(dst, '\\', 'f')
		case r >= 0x20 && r < 0x7f:
			dst = append(dst, byte(r))
		case r > 0xffff:
			r -= 0x10000
			dst = appendUnicodeEscape(dst, 0xd800+(r>>10))
			dst = appendUnicodeEscape(dst, 0xdc00+(r&0x3ff))
		default:
			dst = appendUnicodeEscape(dst, r)
		}
	}
	return append(dst, '"')
}

func appendUnicodeEscape(dst []byte, r rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[(r>>12)&0xf], hexDigits[(r>>8)&0xf], hexDigits[(r>>4)&0xf], hexDigits[r&0xf])
}

func stringSize(s string) int {
	n := 2
	for _, r := range s {
		switch {
		case r == '"' || r == '\\' || r == '\n' || r == '\r' || r == '\t' || r == '\b' || r == '\f':
			n += 2
		case r >= 0x20 && r < 0x7f:
			n++
		case r > 0xffff:
			n += 12
		default:
			n += 6
		}
	}
	return n
}

// RuneLen returns the number of characters (code points) in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
