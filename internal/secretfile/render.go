package secretfile

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// continuationPrefix marks a line as belonging to the preceding multi-line
// field. Values whose lines legitimately start with two spaces cannot be
// represented in this format; the prefix is always stripped on parse.
const continuationPrefix = "  "

// Render decodes a secret's field map into an editable plain-text document.
//
// Keys are emitted in sorted order so output is reproducible across runs.
// Values without line breaks become "key: value"; values with line breaks
// become "key: |" followed by each line indented with two spaces. A field
// whose bytes are not valid UTF-8 is replaced with an inline error marker and
// the remaining fields are still rendered.
//
// Single-line values are trimmed on re-parse, so leading or trailing spaces
// in them do not survive the round trip. That is a limitation of the text
// format itself.
func Render(name, namespace string, fields map[string][]byte) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	writeHeader(&b, name, namespace)

	for _, key := range keys {
		value := fields[key]
		if !utf8.Valid(value) {
			fmt.Fprintf(&b, "%s: <decode error: invalid UTF-8 in field %q>\n", key, key)
			continue
		}

		text := string(value)
		if !strings.Contains(text, "\n") {
			fmt.Fprintf(&b, "%s: %s\n", key, text)
			continue
		}

		fmt.Fprintf(&b, "%s: |\n", key)
		for _, line := range strings.Split(text, "\n") {
			// An empty line inside the value still gets the prefix so it
			// round-trips as an empty line rather than vanishing.
			b.WriteString(continuationPrefix)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeHeader(b *strings.Builder, name, namespace string) {
	rule := "# " + strings.Repeat("-", 60)
	b.WriteString(rule + "\n")
	fmt.Fprintf(b, "# Decoded secret %q from namespace %q\n", name, namespace)
	b.WriteString("# Single-line values: key: value\n")
	b.WriteString("# Multi-line values:  key: | followed by two-space indented lines\n")
	b.WriteString(rule + "\n")
	b.WriteString("\n")
}
