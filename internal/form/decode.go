package form

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrIncomplete reports a payload whose username or message is empty after
// trimming. This is an expected outcome for malformed submissions, not a
// fault: callers skip the payload and move on.
var ErrIncomplete = errors.New("form: incomplete submission")

// Submission is a decoded, trimmed form payload.
type Submission struct {
	Username string
	Message  string
}

// Decode parses a raw URL-encoded payload into a Submission.
//
// Decoding is deliberately forgiving: invalid UTF-8 sequences are replaced
// with the replacement character rather than rejected, blank values are kept,
// and percent-escapes that cannot be unescaped pass through verbatim. The
// only failure mode is ErrIncomplete.
func Decode(raw []byte) (*Submission, error) {
	text := strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	fields := parseQuery(text)

	sub := &Submission{
		Username: strings.TrimSpace(fields["username"]),
		Message:  strings.TrimSpace(fields["message"]),
	}
	if sub.Username == "" || sub.Message == "" {
		return nil, ErrIncomplete
	}
	return sub, nil
}

// parseQuery splits key=value pairs on '&', keeping blank values and the
// first occurrence of each key. Unlike url.ParseQuery it never fails.
func parseQuery(s string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescape(key)
		if _, seen := out[key]; seen {
			continue
		}
		out[key] = unescape(value)
	}
	return out
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}
