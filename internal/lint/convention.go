package lint

import "github.com/harrison/linecheck/internal/glob"

// Rule binds a filename glob to the line terminator files matching it must use.
type Rule struct {
	Glob string
	EOL  EOL
}

// Conventions is an ordered rule table. The first matching rule wins and
// filenames matching no rule expect LF.
type Conventions []Rule

// DefaultConventions returns the built-in table: batch files use CRLF.
func DefaultConventions() Conventions {
	return Conventions{
		{Glob: "*.bat", EOL: CRLF},
	}
}

// ExpectedEOL returns the terminator filename must use.
func (c Conventions) ExpectedEOL(filename string) EOL {
	for _, r := range c {
		if ok, err := glob.Match(r.Glob, filename); err == nil && ok {
			return r.EOL
		}
	}
	return LF
}
