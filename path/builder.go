package path

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// Builder constructs a canonical reported path. The zero value is not
// usable; start from [NewRoot].
type Builder struct {
	root     string
	segments []string
}

// NewRoot returns a Builder anchored at root, the name a Checker facade
// reports for the value under test (default "value", overridable via
// WithReportedPath).
func NewRoot(root string) Builder {
	return Builder{root: root}
}

// Key appends an object property segment.
//
// Identifier-safe keys use dot notation (.name); anything else uses
// bracket-and-quote notation (["with spaces"]).
func (b Builder) Key(key string) Builder {
	return b.append(formatKey(key))
}

// Index appends an array/tuple index segment: [3].
func (b Builder) Index(i int) Builder {
	return b.append("[" + strconv.Itoa(i) + "]")
}

// Raw appends a pre-formatted segment verbatim. Used by diag when it
// replays frames that were already rendered into segment form at the
// point of failure.
func (b Builder) Raw(segment string) Builder {
	return b.append(segment)
}

// String returns the full path: root followed by every segment in order.
func (b Builder) String() string {
	var sb strings.Builder
	sb.WriteString(b.root)
	for _, seg := range b.segments {
		sb.WriteString(seg)
	}
	return sb.String()
}

// Len reports how many segments have been appended since the root.
func (b Builder) Len() int {
	return len(b.segments)
}

func (b Builder) append(segment string) Builder {
	child := Builder{root: b.root, segments: make([]string, len(b.segments), len(b.segments)+1)}
	copy(child.segments, b.segments)
	child.segments = append(child.segments, segment)
	return child
}

// FormatKey renders a single property key the way Builder.Key would,
// without needing a Builder: used by the compiler when it builds a
// diag-frame segment ahead of actually forking a context.
func FormatKey(key string) string {
	return formatKey(key)
}

// FormatIndex renders a single array index segment.
func FormatIndex(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func formatKey(key string) string {
	if isIdentifierSafe(key) {
		return "." + key
	}
	return `["` + escapeString(key) + `"]`
}

// isIdentifierSafe reports whether key can be rendered with dot notation:
// non-empty, starting with a letter or underscore, containing only
// letters, digits, and underscores. Full-width Unicode letters/digits
// (common in decoded JSON from CJK locales) are folded to their narrow
// form first, so a key like "ｕｓｅｒ" is recognized as identifier-safe
// the same as "user" would be.
func isIdentifierSafe(key string) bool {
	if len(key) == 0 {
		return false
	}
	for i, r := range key {
		if n := width.LookupRune(r).Narrow(); n != 0 {
			r = n
		}
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !isLetter(r) && !isDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// escapeString applies the minimal escaping needed inside a
// double-quoted bracket segment.
func escapeString(s string) string {
	needsEscape := false
	for _, r := range s {
		if r == '\\' || r == '"' || r < 0x20 {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				sb.WriteString("\\u")
				sb.WriteString(strconv.FormatInt(int64(r), 16))
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}
