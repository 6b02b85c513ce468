package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "numbered keys stripped",
			in:   `{"1. open": "1.00", "7. dividend amount": "0.24"}`,
			want: `{"open": "1.00", "dividend amount": "0.24"}`,
		},
		{
			name: "numbered values kept",
			in:   `{"1. Information": "1. Monthly Adjusted", "2. Symbol" : "IBM"}`,
			want: `{"Information": "1. Monthly Adjusted", "Symbol" : "IBM"}`,
		},
		{
			name: "plain keys untouched",
			in:   `{"Meta Data": {"note": "2. x"}}`,
			want: `{"Meta Data": {"note": "2. x"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, string(cleanKeys([]byte(tt.in))))
		})
	}
}
