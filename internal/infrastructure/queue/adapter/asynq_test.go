package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQueueWeights(t *testing.T) {
	cases := []struct {
		in   string
		want map[string]int
	}{
		{"critical=6,default=3,low=1", map[string]int{"critical": 6, "default": 3, "low": 1}},
		{"default=1, chat=2", map[string]int{"default": 1, "chat": 2}},
		{"chat", map[string]int{"chat": 1}},
		{"chat=0", map[string]int{"chat": 1}},
		{"chat=junk", map[string]int{"chat": 1}},
		{" , ,default=2", map[string]int{"default": 2}},
		{"", map[string]int{}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, parseQueueWeights(tc.in))
		})
	}
}
