package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEOL(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantContent string
		wantEOL     EOL
	}{
		{"lf", "abc\n", "abc", LF},
		{"crlf", "abc\r\n", "abc", CRLF},
		{"no terminator", "abc", "abc", None},
		{"lone cr is content", "abc\r", "abc\r", None},
		{"cr before lf in the middle", "a\rb\n", "a\rb", LF},
		{"bare lf", "\n", "", LF},
		{"bare crlf", "\r\n", "", CRLF},
		{"empty", "", "", None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, eol := SplitEOL([]byte(tt.line))
			assert.Equal(t, tt.wantContent, string(content))
			assert.Equal(t, tt.wantEOL, eol)
		})
	}
}

func TestEOLRendering(t *testing.T) {
	assert.Equal(t, `"\n"`, LF.Quoted())
	assert.Equal(t, `"\r\n"`, CRLF.Quoted())
	assert.Equal(t, `""`, None.Quoted())
	assert.Equal(t, "crlf", CRLF.Name())
	assert.Equal(t, "lf", LF.Name())
	assert.Equal(t, "none", None.Name())
}
