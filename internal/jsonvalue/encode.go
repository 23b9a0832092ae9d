package jsonvalue

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

const indentUnit = "  "

// Encode renders v as indented JSON: two-space indent, `": "` between key
// and value, LF line endings and no trailing newline. Empty containers
// render as `{}` and `[]`. Strings escape only what JSON requires, so
// non-ASCII text and HTML characters are written as-is.
func Encode(v *Value) []byte {
	var buf bytes.Buffer
	encodeValue(&buf, v, 0)
	return buf.Bytes()
}

func encodeValue(buf *bytes.Buffer, v *Value, depth int) {
	switch v.Kind() {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case Number:
		buf.WriteString(v.text)
	case String:
		writeString(buf, v.text)
	case Array:
		if len(v.items) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, depth+1)
			encodeValue(buf, item, depth+1)
		}
		newline(buf, depth)
		buf.WriteByte(']')
	case Object:
		if v.members.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for pair := v.members.Oldest(); pair != nil; pair = pair.Next() {
			if pair != v.members.Oldest() {
				buf.WriteByte(',')
			}
			newline(buf, depth+1)
			writeString(buf, pair.Key)
			buf.WriteString(": ")
			encodeValue(buf, pair.Value, depth+1)
		}
		newline(buf, depth)
		buf.WriteByte('}')
	}
}

func newline(buf *bytes.Buffer, depth int) {
	buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		buf.WriteString(indentUnit)
	}
}

const hexDigits = "0123456789abcdef"

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			buf.WriteRune(r)
			i += size
			continue
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if c < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[c>>4])
				buf.WriteByte(hexDigits[c&0xf])
			} else {
				buf.WriteByte(c)
			}
		}
		i++
	}
	buf.WriteByte('"')
}
