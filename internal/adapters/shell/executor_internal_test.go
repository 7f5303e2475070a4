package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		base      []string
		overrides []string
		expected  []string
	}{
		{
			name:     "Base Only",
			base:     []string{"USER=test", "PATH=/bin"},
			expected: []string{"PATH=/bin", "USER=test"},
		},
		{
			name:      "Override Wins",
			base:      []string{"USER=test", "RSCRIPT_PATH=/old.rs"},
			overrides: []string{"RSCRIPT_PATH=/new.rs"},
			expected:  []string{"RSCRIPT_PATH=/new.rs", "USER=test"},
		},
		{
			name:      "Empty Value Kept",
			base:      []string{"HOME=/home/test"},
			overrides: []string{"RSCRIPT_PATH="},
			expected:  []string{"HOME=/home/test", "RSCRIPT_PATH="},
		},
		{
			name:     "Malformed Entries Dropped",
			base:     []string{"NOEQUALS", "A=1"},
			expected: []string{"A=1"},
		},
		{
			name:      "Value Containing Equals",
			overrides: []string{"FLAGS=--cfg=a"},
			expected:  []string{"FLAGS=--cfg=a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mergeEnvironment(tt.base, tt.overrides))
		})
	}
}
