// Package glob matches filenames against shell-style wildcard patterns.
//
// Patterns follow fnmatch rules: '*' matches any run of characters and '?'
// matches any single character, both including the path separator, so
// "*.bat" matches "scripts/build.bat". Bracket classes "[abc]", "[a-z0-9]"
// and negated classes "[!abc]" are supported; a ']' directly after the
// opening bracket is a member, and a '[' with no closing bracket is a
// literal. Every other character, including '\', '{' and '}', matches
// itself. Matching is case sensitive.
package glob

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// Matcher compiles patterns on first use and caches them.
type Matcher struct {
	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// NewMatcher creates an empty Matcher.
func NewMatcher() *Matcher {
	return &Matcher{cache: make(map[string]*regexp.Regexp)}
}

// Compile validates pattern and stores its compiled form.
func (m *Matcher) Compile(pattern string) (*regexp.Regexp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if re, ok := m.cache[pattern]; ok {
		return re, nil
	}

	re, err := regexp.Compile(Translate(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	m.cache[pattern] = re
	return re, nil
}

// Match reports whether name matches pattern.
func (m *Matcher) Match(pattern, name string) (bool, error) {
	re, err := m.Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(name), nil
}

// MatchAny reports whether name matches at least one of patterns.
func (m *Matcher) MatchAny(patterns []string, name string) (bool, error) {
	for _, p := range patterns {
		ok, err := m.Match(p, name)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Translate converts pattern to an anchored regular expression.
func Translate(pattern string) string {
	p := []rune(pattern)
	var sb strings.Builder
	sb.WriteString(`(?s)^`)

	for i := 0; i < len(p); {
		c := p[i]
		i++
		switch c {
		case '*':
			for i < len(p) && p[i] == '*' {
				i++
			}
			sb.WriteString(`.*`)
		case '?':
			sb.WriteString(`.`)
		case '[':
			end := classEnd(p, i)
			if end < 0 {
				sb.WriteString(`\[`)
				continue
			}
			sb.WriteString(translateClass(p[i:end]))
			i = end + 1
		default:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	sb.WriteString(`$`)
	return sb.String()
}

// classEnd returns the index of the ']' closing a class whose body starts at
// start, or -1 if the class is never closed.
func classEnd(p []rune, start int) int {
	j := start
	if j < len(p) && p[j] == '!' {
		j++
	}
	if j < len(p) && p[j] == ']' {
		j++
	}
	for j < len(p) && p[j] != ']' {
		j++
	}
	if j >= len(p) {
		return -1
	}
	return j
}

// matchNothing is a class no character belongs to.
const matchNothing = `[^\x00-\x{10FFFF}]`

func translateClass(body []rune) string {
	negate := len(body) > 0 && body[0] == '!'
	if negate {
		body = body[1:]
	}

	var sb strings.Builder
	for k := 0; k < len(body); k++ {
		lo := body[k]
		if k+2 < len(body) && body[k+1] == '-' {
			hi := body[k+2]
			k += 2
			// a reversed range such as "z-a" is empty
			if lo > hi {
				continue
			}
			sb.WriteString(classRune(lo) + "-" + classRune(hi))
			continue
		}
		sb.WriteString(classRune(lo))
	}

	switch {
	case sb.Len() == 0 && negate:
		return `.`
	case sb.Len() == 0:
		return matchNothing
	case negate:
		return `[^` + sb.String() + `]`
	default:
		return `[` + sb.String() + `]`
	}
}

// classRune escapes r for use inside a regexp character class.
func classRune(r rune) string {
	if r < utf8.RuneSelf && !isAlnum(r) {
		return `\` + string(r)
	}
	return string(r)
}

func isAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

var defaultMatcher = NewMatcher()

// Match reports whether name matches pattern using a process-wide cache.
func Match(pattern, name string) (bool, error) {
	return defaultMatcher.Match(pattern, name)
}
