package report_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alecstrong/conway/internal/metrics"
	"github.com/alecstrong/conway/internal/percent"
	"github.com/alecstrong/conway/internal/pretty"
	"github.com/alecstrong/conway/internal/report"
	"github.com/alecstrong/conway/internal/tally"
)

func disableColor(t *testing.T) {
	pretty.SetColorEnabled(false)
	t.Cleanup(func() { pretty.SetColorEnabled(true) })
}

func TestWriteFolders(t *testing.T) {
	disableColor(t)

	r := metrics.FolderReport{
		InFolders: []metrics.Contribution{
			{Key: "bob", OfOwnTotal: percent.Of(3, 4)},
		},
		OfFolders: []metrics.Contribution{
			{Key: "bob", OfScopeTotal: percent.Of(2, 3)},
			{Key: "jim", OfScopeTotal: percent.Of(1, 3)},
		},
	}

	var b strings.Builder
	err := report.WriteFolders(&b, []string{"foo", "bar"}, r)
	if err != nil {
		t.Fatalf("WriteFolders() returned error: %v", err)
	}

	expected := strings.Join([]string{
		"bob writes 75.00% of their code in foo, bar",
		"---",
		"bob accounts for 66.67% of foo, bar",
		"jim accounts for 33.33% of foo, bar",
		"",
	}, "\n")
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Errorf("output is wrong:\n%s", diff)
	}
}

func TestWriteFoldersEmpty(t *testing.T) {
	disableColor(t)

	var b strings.Builder
	err := report.WriteFolders(&b, []string{"foo"}, metrics.FolderReport{})
	if err != nil {
		t.Fatalf("WriteFolders() returned error: %v", err)
	}

	if b.String() != "---\n" {
		t.Errorf("expected only the separator but got %q", b.String())
	}
}

func TestWriteAuthor(t *testing.T) {
	disableColor(t)

	contributions := []metrics.Contribution{
		{
			Key:          "app",
			OfScopeTotal: percent.Of(60, 63),
			OfOwnTotal:   percent.Of(60, 100),
			Changes:      tally.LineChanges{Additions: 45, Deletions: 15},
		},
	}

	var b strings.Builder
	if err := report.WriteAuthorHeader(&b, "a", percent.One); err != nil {
		t.Fatalf("WriteAuthorHeader() returned error: %v", err)
	}
	if err := report.WriteAuthor(&b, "a", contributions); err != nil {
		t.Fatalf("WriteAuthor() returned error: %v", err)
	}

	expected := strings.Join([]string{
		"Finding folders with 1% or greater contributions for a",
		"a writes 95.24% of their code in app (60.00% of app, +45/-15, 25.00% deletions)",
		"",
	}, "\n")
	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Errorf("output is wrong:\n%s", diff)
	}
}
