// Prints contribution reports, one line per row.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/alecstrong/conway/internal/format"
	"github.com/alecstrong/conway/internal/metrics"
	"github.com/alecstrong/conway/internal/percent"
)

// Printed between the two rankings of a folder report.
const Separator = "---"

// Printed to the error output when git log produced nothing.
const NoCommitsMessage = "There were no commits for the given arguments"

// Writes both rankings of a folder report.
func WriteFolders(
	w io.Writer,
	folders []string,
	r metrics.FolderReport,
) error {
	bw := bufio.NewWriter(w)
	where := format.Folders(folders)

	for _, c := range r.InFolders {
		fmt.Fprintf(
			bw,
			"%s writes %s of their code in %s\n",
			c.Key,
			format.Percent(c.OfOwnTotal),
			where,
		)
	}

	fmt.Fprintln(bw, Separator)

	for _, c := range r.OfFolders {
		fmt.Fprintf(
			bw,
			"%s accounts for %s of %s\n",
			c.Key,
			format.Percent(c.OfScopeTotal),
			where,
		)
	}

	return bw.Flush()
}

// Writes the line announcing an author report.
func WriteAuthorHeader(w io.Writer, author string, floor decimal.Decimal) error {
	_, err := fmt.Fprintf(
		w,
		"Finding folders with %s%% or greater contributions for %s\n",
		floor.String(),
		author,
	)
	return err
}

// Writes an author report, one line per directory.
func WriteAuthor(
	w io.Writer,
	author string,
	contributions []metrics.Contribution,
) error {
	bw := bufio.NewWriter(w)

	for _, c := range contributions {
		fmt.Fprintf(
			bw,
			"%s writes %s of their code in %s (%s of %s, %s)\n",
			author,
			format.Percent(c.OfScopeTotal),
			format.Folders([]string{c.Key}),
			format.Percent(c.OfOwnTotal),
			format.Folders([]string{c.Key}),
			deletions(c),
		)
	}

	return bw.Flush()
}

func deletions(c metrics.Contribution) string {
	return fmt.Sprintf(
		"+%d/-%d, %s%% deletions",
		c.Changes.Additions,
		c.Changes.Deletions,
		percent.Format(c.Changes.DeletionRatio()),
	)
}
