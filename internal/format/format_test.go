package format_test

import (
	"testing"

	"github.com/alecstrong/conway/internal/format"
	"github.com/alecstrong/conway/internal/percent"
	"github.com/alecstrong/conway/internal/pretty"
)

func TestPercent(t *testing.T) {
	pretty.SetColorEnabled(false)
	t.Cleanup(func() { pretty.SetColorEnabled(true) })

	if got := format.Percent(percent.Of(15, 20)); got != "75.00%" {
		t.Errorf("expected \"75.00%%\" but got %q", got)
	}
}

func TestFolders(t *testing.T) {
	if got := format.Folders([]string{"src/main", ""}); got != "src/main, /" {
		t.Errorf("expected \"src/main, /\" but got %q", got)
	}
}
