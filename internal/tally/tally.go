// Handles summations over change events.
package tally

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alecstrong/conway/internal/git"
	"github.com/alecstrong/conway/internal/percent"
)

// Lines added and removed. The zero value is the identity for Add.
type LineChanges struct {
	Additions int64
	Deletions int64
}

func FromEvent(e git.ChangeEvent) LineChanges {
	return LineChanges{Additions: e.LinesAdded, Deletions: e.LinesRemoved}
}

func (a LineChanges) Add(b LineChanges) LineChanges {
	return LineChanges{
		Additions: a.Additions + b.Additions,
		Deletions: a.Deletions + b.Deletions,
	}
}

func (c LineChanges) Total() int64 {
	return c.Additions + c.Deletions
}

// Deletions as a percentage of all changed lines.
func (c LineChanges) DeletionRatio() decimal.Decimal {
	return percent.Of(c.Deletions, c.Total())
}

func (c LineChanges) String() string {
	return fmt.Sprintf("+%d/-%d", c.Additions, c.Deletions)
}

// Running line changes per key, where a key is an author or a directory.
type Table map[string]LineChanges

func (t Table) Accumulate(key string, delta LineChanges) {
	t[key] = t[key].Add(delta)
}

// Zero LineChanges for keys that were never accumulated.
func (t Table) Get(key string) LineChanges {
	return t[key]
}

func (t Table) Sum() LineChanges {
	var sum LineChanges
	for _, changes := range t {
		sum = sum.Add(changes)
	}

	return sum
}

// Totals for everything a key did (Global) and for what it did within the
// scopes of interest (Scoped).
//
// Every key in Scoped is also in Global with a total at least as large, as
// long as the scoped KeyFunc only accepts events the global one accepts under
// the same key.
type Tallies struct {
	Global Table
	Scoped Table
}

func NewTallies() Tallies {
	return Tallies{
		Global: Table{},
		Scoped: Table{},
	}
}

// Decides which key, if any, an event is tallied under.
type KeyFunc func(e git.ChangeEvent) (key string, ok bool)

// Tallies every event under the key returned by globalKey and, separately,
// under the key returned by scopedKey. An event a KeyFunc rejects is left out
// of that table only.
func TallyChanges(
	changes iter.Seq2[git.ChangeEvent, error],
	globalKey KeyFunc,
	scopedKey KeyFunc,
) (Tallies, error) {
	tallies := NewTallies()
	start := time.Now()
	numEvents := 0

	for change, err := range changes {
		if err != nil {
			return tallies, fmt.Errorf("error iterating changes: %w", err)
		}

		numEvents += 1
		delta := FromEvent(change)

		if key, ok := globalKey(change); ok {
			tallies.Global.Accumulate(key, delta)
		}

		if key, ok := scopedKey(change); ok {
			tallies.Scoped.Accumulate(key, delta)
		}
	}

	elapsed := time.Now().Sub(start)
	logger().Debug(
		"tallied changes",
		"events",
		numEvents,
		"global_keys",
		len(tallies.Global),
		"scoped_keys",
		len(tallies.Scoped),
		"duration_ms",
		elapsed.Milliseconds(),
	)

	return tallies, nil
}

var pkgLogger *slog.Logger

func logger() *slog.Logger {
	if pkgLogger == nil {
		pkgLogger = slog.Default().With("package", "tally")
	}

	return pkgLogger
}
