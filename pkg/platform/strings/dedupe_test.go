package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil passes through", input: nil, want: nil},
		{name: "repeated product ids collapse", input: []string{"prod-1", "prod-2", "prod-1"}, want: []string{"prod-1", "prod-2"}},
		{name: "padding is trimmed before comparing", input: []string{" prod-1", "prod-1 "}, want: []string{"prod-1"}},
		{name: "blanks are dropped", input: []string{"", "  ", "prod-3"}, want: []string{"prod-3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeAndTrim(tt.input))
		})
	}
}
