package logutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "login", 10, "login"},
		{"exact", "login", 5, "login"},
		{"cut", "login button", 5, "login..."},
		{"multibyte", "héllo wörld", 4, "héll..."},
		{"zero", "anything", 0, "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateForLog(tt.in, tt.max))
		})
	}
}
