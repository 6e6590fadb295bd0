package config_test

import (
	"testing"

	"github.com/alecstrong/conway/internal/git/config"
)

func TestHasMailmap(t *testing.T) {
	tests := []struct {
		name     string
		files    config.MailmapFiles
		expected bool
	}{
		{"none", config.MailmapFiles{}, false},
		{"repo", config.MailmapFiles{RepoMailmapPath: ".mailmap"}, true},
		{
			"global",
			config.MailmapFiles{GlobalMailmapPath: "/home/bob/.mailmap"},
			true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.files.HasMailmap(); got != test.expected {
				t.Errorf("expected %v but got %v", test.expected, got)
			}
		})
	}
}
