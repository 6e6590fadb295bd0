package cmd_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alecstrong/conway/internal/git/cmd"
)

func TestLogFiltersToArgs(t *testing.T) {
	tests := []struct {
		name     string
		filters  cmd.LogFilters
		expected []string
	}{
		{
			name:     "empty",
			filters:  cmd.LogFilters{},
			expected: []string{},
		},
		{
			name:     "since",
			filters:  cmd.LogFilters{Since: "2 weeks ago"},
			expected: []string{"--since", "2 weeks ago"},
		},
		{
			name: "all",
			filters: cmd.LogFilters{
				Since:   "2024-01-01",
				Until:   "2024-06-01",
				Authors: []string{"bob", "jim"},
			},
			expected: []string{
				"--since",
				"2024-01-01",
				"--until",
				"2024-06-01",
				"--author",
				"bob",
				"--author",
				"jim",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := test.filters.ToArgs()
			if diff := cmp.Diff(test.expected, args); diff != "" {
				t.Errorf("wrong args:\n%s", diff)
			}
		})
	}
}
