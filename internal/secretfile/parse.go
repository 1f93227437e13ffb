package secretfile

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ParseError reports a line that is neither a comment, a blank separator, a
// continuation line, nor a "key: value" field start.
type ParseError struct {
	Line int    // 1-based line number in the input
	Text string // the offending line, verbatim
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: not a field, comment or continuation: %q", e.Line, e.Text)
}

// Parse reads a plain-text document in the format produced by Render and
// returns the field map with raw (not yet base64-encoded) values.
//
// The scan is a single line-oriented pass. Comments and blank lines outside a
// multi-line body are skipped. A line without leading whitespace containing
// ':' starts a field; only the first ':' separates key from value. A value of
// exactly "|" (or an empty value) collects subsequent two-space indented
// lines, joined with '\n' and no trailing newline. A blank line or any
// non-indented line ends the current multi-line body.
//
// Duplicate keys overwrite earlier ones, last write wins. Malformed lines are
// skipped; the first one is returned as a *ParseError alongside the fields
// parsed from the rest of the document, so the caller chooses between
// aborting and continuing with the partial result.
func Parse(text string) (map[string][]byte, error) {
	fields := make(map[string][]byte)

	var (
		firstErr   *ParseError
		currentKey string
		blockLines []string
		inBlock    bool
	)

	finalize := func() {
		fields[currentKey] = []byte(strings.Join(blockLines, "\n"))
		blockLines = nil
		inBlock = false
	}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(raw, "\r")

		if inBlock {
			if strings.HasPrefix(line, continuationPrefix) {
				blockLines = append(blockLines, line[len(continuationPrefix):])
				continue
			}
			// Anything not indented ends the body; non-blank lines are
			// re-evaluated as a new field start below.
			finalize()
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		key, rest, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(key) == "" || line != strings.TrimLeft(line, " \t") {
			if firstErr == nil {
				firstErr = &ParseError{Line: i + 1, Text: line}
			}
			continue
		}

		key = strings.TrimSpace(key)
		value := strings.TrimSpace(rest)

		switch value {
		case "|", "":
			// "key: |" opens a multi-line body. A bare "key:" is a pending
			// field: indented lines may still supply its value, and with no
			// continuation it finalizes as empty.
			currentKey = key
			inBlock = true
		default:
			fields[key] = []byte(value)
		}
	}

	if inBlock {
		finalize()
	}

	if firstErr != nil {
		return fields, firstErr
	}
	return fields, nil
}

// EncodeData base64-encodes every field value, producing the data map of a
// Secret payload. Standard alphabet, with padding.
func EncodeData(fields map[string][]byte) map[string]string {
	data := make(map[string]string, len(fields))
	for k, v := range fields {
		data[k] = base64.StdEncoding.EncodeToString(v)
	}
	return data
}
