// Derives ranked contribution percentages from finished tallies.
package metrics

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/alecstrong/conway/internal/percent"
	"github.com/alecstrong/conway/internal/tally"
)

// Authors with fewer changed lines than this are left out of folder reports.
const DefaultMinActivity = 10

// Which table's keys produce contribution rows.
type KeySource int

const (
	GlobalKeys KeySource = iota
	ScopedKeys
)

// Which percentage to rank or filter by.
type Metric int

const (
	OfOwnTotal Metric = iota
	OfScopeTotal
)

type Opts struct {
	Keys KeySource
	// Keys whose global total is below this are dropped entirely.
	MinActivity int64
}

// One report row.
type Contribution struct {
	Key string
	// Scoped total as a share of this key's own global total.
	OfOwnTotal decimal.Decimal
	// Scoped total as a share of every key's scoped total.
	OfScopeTotal decimal.Decimal
	Changes      tally.LineChanges // Scoped
	Global       tally.LineChanges
}

func (c Contribution) Value(metric Metric) decimal.Decimal {
	switch metric {
	case OfOwnTotal:
		return c.OfOwnTotal
	case OfScopeTotal:
		return c.OfScopeTotal
	default:
		panic("unrecognized metric in switch")
	}
}

func (c Contribution) String() string {
	return fmt.Sprintf(
		"{ key:%s own:%s scope:%s changes:%s global:%s }",
		c.Key,
		percent.Format(c.OfOwnTotal),
		percent.Format(c.OfScopeTotal),
		c.Changes,
		c.Global,
	)
}

// Computes a contribution for every key in the chosen table.
//
// The scope total used as the denominator of OfScopeTotal sums every scoped
// key, including keys later dropped for low activity or hidden for a small
// percentage.
func Contributions(t tally.Tallies, opts Opts) []Contribution {
	keys := t.Global
	if opts.Keys == ScopedKeys {
		keys = t.Scoped
	}

	scopeTotal := t.Scoped.Sum().Total()

	contributions := []Contribution{}
	for key := range keys {
		global := t.Global.Get(key)
		if global.Total() < opts.MinActivity {
			logger().Debug(
				"skipping key below activity floor",
				"key",
				key,
				"total",
				global.Total(),
			)
			continue
		}

		scoped := t.Scoped.Get(key)
		contributions = append(contributions, Contribution{
			Key:          key,
			OfOwnTotal:   percent.Of(scoped.Total(), global.Total()),
			OfScopeTotal: percent.Of(scoped.Total(), scopeTotal),
			Changes:      scoped,
			Global:       global,
		})
	}

	return contributions
}

// Returns a copy sorted by metric, highest first. Ties go to the key that
// sorts first.
func Rank(contributions []Contribution, metric Metric) []Contribution {
	ranked := slices.Clone(contributions)
	slices.SortStableFunc(ranked, func(a, b Contribution) int {
		if c := b.Value(metric).Cmp(a.Value(metric)); c != 0 {
			return c
		}

		return cmp.Compare(a.Key, b.Key)
	})

	return ranked
}

// Keeps the contributions whose metric is at least floor.
func AtLeast(
	contributions []Contribution,
	metric Metric,
	floor decimal.Decimal,
) []Contribution {
	kept := []Contribution{}
	for _, c := range contributions {
		if c.Value(metric).GreaterThanOrEqual(floor) {
			kept = append(kept, c)
		}
	}

	return kept
}

// Rows of a folder report: authors ranked by how much of their own work is in
// the folders, and by how much of the folders' work is theirs.
type FolderReport struct {
	InFolders []Contribution // Ranked by OfOwnTotal
	OfFolders []Contribution // Ranked by OfScopeTotal
}

// Builds a folder report from tallies keyed by author. Rows under floor are
// hidden from each ranking but still count toward the folder total.
func ByFolders(
	t tally.Tallies,
	minActivity int64,
	floor decimal.Decimal,
) FolderReport {
	contributions := Contributions(t, Opts{
		Keys:        GlobalKeys,
		MinActivity: minActivity,
	})

	return FolderReport{
		InFolders: AtLeast(Rank(contributions, OfOwnTotal), OfOwnTotal, floor),
		OfFolders: AtLeast(
			Rank(contributions, OfScopeTotal),
			OfScopeTotal,
			floor,
		),
	}
}

// Builds an author report from tallies keyed by directory, where Scoped holds
// only the author's changes and Global everyone's. Directories under floor
// are dropped.
//
// For each row, OfScopeTotal is the share of the author's work in that
// directory and OfOwnTotal is the author's share of the directory.
func ByAuthor(t tally.Tallies, floor decimal.Decimal) []Contribution {
	contributions := Contributions(t, Opts{Keys: ScopedKeys})
	contributions = AtLeast(contributions, OfScopeTotal, floor)
	return Rank(contributions, OfScopeTotal)
}

var pkgLogger *slog.Logger

func logger() *slog.Logger {
	if pkgLogger == nil {
		pkgLogger = slog.Default().With("package", "metrics")
	}

	return pkgLogger
}
