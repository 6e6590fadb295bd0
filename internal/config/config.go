// Settings for a conway run, read from a config file and the environment.
//
// Command-line flags take precedence over everything here.
package config

import (
	"errors"
	"fmt"

	"github.com/alecstrong/conway/internal/percent"
)

// Default activity floor for folder reports.
const DefaultMinActivity = 10

// Default smallest percentage shown.
const DefaultDisplayFloor = "1.00"

// Config is the top-level configuration struct for conway.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Folders      []string `mapstructure:"folders"`
	Author       string   `mapstructure:"author"`
	Since        string   `mapstructure:"since"`
	Until        string   `mapstructure:"until"`
	MinActivity  int64    `mapstructure:"min_activity"`
	DisplayFloor string   `mapstructure:"display_floor"`
	Mailmap      bool     `mapstructure:"mailmap"`
}

var (
	ErrNegativeMinActivity = errors.New("min_activity must not be negative")
	ErrBadDisplayFloor     = errors.New("display_floor must be a non-negative percentage")
)

func (c Config) Validate() error {
	if c.MinActivity < 0 {
		return ErrNegativeMinActivity
	}

	if _, err := percent.Parse(c.DisplayFloor); err != nil {
		return fmt.Errorf("%w: %w", ErrBadDisplayFloor, err)
	}

	return nil
}
