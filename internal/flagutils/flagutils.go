// Custom flag.Value types.
package flagutils

import (
	"strings"
)

// A flag that can be given more than once, collecting every value.
type SliceFlag []string

func (s *SliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *SliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}
