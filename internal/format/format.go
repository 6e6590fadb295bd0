/*
* Utility functions for formatting output.
 */
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alecstrong/conway/internal/percent"
	"github.com/alecstrong/conway/internal/pretty"
)

// A percentage with two decimal places and a percent sign, e.g. "75.00%".
func Percent(d decimal.Decimal) string {
	return fmt.Sprintf("%s%s%%%s", pretty.Bold(), percent.Format(d), pretty.Reset())
}

// How a folder or list of folders reads in a sentence. The repository root is
// shown as "/".
func Folders(folders []string) string {
	names := make([]string, 0, len(folders))
	for _, f := range folders {
		if f == "" {
			f = "/"
		}
		names = append(names, f)
	}

	return strings.Join(names, ", ")
}
