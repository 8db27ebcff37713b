package tabular

import (
	"bytes"
	"strings"
)

// Render encodes a Table back to delimited text.
//
// The header line is followed by one line per record, values in column
// order, each line ending in \n. Fields containing a comma or quote are
// quoted so that Decode(Render(t)) yields the same values, provided the
// values carry no surrounding whitespace or newlines (the decoder trims the
// former and cannot represent the latter).
//
// Example:
//
//	table, _ := tabular.Decode("name,city\nAlice,\"Paris, FR\"")
//	out := tabular.Render(table)
//	// out: name,city\nAlice,"Paris, FR"\n
func Render(t *Table) []byte {
	if t == nil {
		return []byte{}
	}

	var buf bytes.Buffer
	writeRow(&buf, t.Columns)
	for i := range t.Records {
		writeRow(&buf, t.Row(i))
	}
	return buf.Bytes()
}

// RenderString is Render returning a string.
func RenderString(t *Table) string {
	return string(Render(t))
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeField(buf, f)
	}
	buf.WriteByte('\n')
}

// writeField writes a field with quoting the decoder reads back.
//
// Quotes are doubled and the field is wrapped in quotes when it contains a
// comma or quote. A field made only of quotes is written doubled and
// unwrapped: wrapping would merge the opening and closing quotes into the
// same run and change the decoded value.
func writeField(buf *bytes.Buffer, value string) {
	if !strings.ContainsAny(value, `,"`) {
		buf.WriteString(value)
		return
	}

	escaped := strings.ReplaceAll(value, `"`, `""`)
	if strings.Trim(value, `"`) == "" {
		buf.WriteString(escaped)
		return
	}

	buf.WriteByte('"')
	buf.WriteString(escaped)
	buf.WriteByte('"')
}
