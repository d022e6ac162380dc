package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmailFromVoice(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"ana at gmail dot com", "ana@gmail.com", true},
		{"my email is Ana.Lopez@Example.org", "ana.lopez@example.org", true},
		{"ana dot garcia at hotmail dot es", "ana.garcia@hotmail.es", true},
		{"ana arroba gmail punto com", "ana@gmail.com", true},
		{"mail at mail dot co dot uk", "mail@mail.co.uk", true},
		{"ana at gmail", "ana@gmail.com", true},
		{"pepe at empresa.es", "pepe@empresa.es", true},
		{"I don't have one", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseEmailFromVoice(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
