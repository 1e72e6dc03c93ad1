package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"tabs and newlines kept", "a\tb\nc", "a\tb\nc"},
		{"escape sequence", "hi\x1b[31mred", `hi\x1b[31mred`},
		{"nul byte", "nul:\x00", `nul:\x00`},
		{"carriage return", "over\rwrite", `over\x0dwrite`},
		{"invalid utf8", "bad:\xff", `bad:\xff`},
		{"c1 control", "x\u0085y", `x\x85y`},
		{"line separator", "a\u2028b", `a\u2028b`},
		{"unicode kept", "café ✓", "café ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}
