package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alecstrong/conway/internal/config"
	"github.com/alecstrong/conway/internal/flagutils"
	"github.com/alecstrong/conway/internal/git/cmd"
	"github.com/alecstrong/conway/internal/percent"
	"github.com/alecstrong/conway/internal/pretty"
	"github.com/alecstrong/conway/internal/scope"
	"github.com/alecstrong/conway/internal/subcommands"
)

var Commit = "unknown"
var Version = "unknown"

type command struct {
	flagSet     *flag.FlagSet
	run         func(args []string) error
	description string
}

// Main examines the args and delegates to the specified subcommand.
//
// If no subcommand was specified, we default to the "report" subcommand.
func main() {
	subcmds := map[string]command{ // Available subcommands
		"report": reportCmd(),
		"dump":   dumpCmd(),
		"parse":  parseCmd(),
	}

	// --- Handle top-level flags ---
	mainFlagSet := flag.NewFlagSet("conway", flag.ExitOnError)

	versionFlag := mainFlagSet.Bool("version", false, "Print version and exit")
	verboseFlag := mainFlagSet.Bool("v", false, "Enables debug logging")

	mainFlagSet.Usage = func() {
		fmt.Println("Usage: conway [-v] [subcommand] [subcommand options...]")
		fmt.Println("conway reports who writes the code in which folders")

		fmt.Println()
		fmt.Println("Top-level options:")
		mainFlagSet.PrintDefaults()

		fmt.Println()
		fmt.Println("Subcommands:")

		helpSubcommands := []string{"report"}
		for _, name := range helpSubcommands {
			cmd := subcmds[name]

			fmt.Printf("  %s\n", name)
			fmt.Printf("\t%s\n", cmd.description)
		}
	}

	// Look for the index of the first arg not intended as a top-level flag.
	// We handle this manually so that specifying the default subcommand is
	// optional even when providing subcommand flags.
	subcmdIndex := 1
loop:
	for subcmdIndex < len(os.Args) {
		switch os.Args[subcmdIndex] {
		case "-version", "--version", "-v", "--v", "-h", "--help":
			subcmdIndex += 1
		default:
			break loop
		}
	}

	mainFlagSet.Parse(os.Args[1:subcmdIndex])

	if *versionFlag {
		fmt.Printf("%s %s\n", Version, Commit)
		return
	}

	if *verboseFlag {
		configureLogging(slog.LevelDebug)
		logger().Debug("log level set to DEBUG")
	} else {
		configureLogging(slog.LevelInfo)
	}

	pretty.SetColorEnabled(pretty.AllowDynamic(os.Stdout))

	args := os.Args[subcmdIndex:]

	// --- Handle subcommands ---
	cmd := subcmds["report"] // Default to "report"
	if len(args) > 0 {
		first := args[0]
		if subcommand, ok := subcmds[first]; ok {
			cmd = subcommand
			args = args[1:]
		}
	}

	cmd.flagSet.Parse(args)
	subargs := cmd.flagSet.Args()

	if err := cmd.run(subargs); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// -v- Subcommand definitions --------------------------------------------------

func reportCmd() command {
	flagSet := flag.NewFlagSet("conway report", flag.ExitOnError)

	folders := flagSet.String(
		"folders",
		"",
		"Input directories <directory1>,<directory2>",
	)
	author := flagSet.String("author", "", "Alias to search by")
	since := flagSet.String("since", "", strings.TrimSpace(`
Only count commits after the given date. See git-log(1) for valid date formats
	`))
	until := flagSet.String("until", "", "Only count commits before the given date")
	configPath := flagSet.String(
		"config",
		"",
		"Config file (default .conway.yaml in the working or home directory)",
	)
	minActivity := flagSet.Int64(
		"min-activity",
		config.DefaultMinActivity,
		"Leave out authors with fewer changed lines than this",
	)
	floor := flagSet.String(
		"floor",
		config.DefaultDisplayFloor,
		"Smallest percentage to report",
	)
	noMailmap := flagSet.Bool("no-mailmap", false, "Ignore .mailmap files")

	description := "Print folder contributions by author, or author contributions by folder"

	flagSet.Usage = func() {
		fmt.Println(strings.TrimSpace(`
Usage: conway report (-folders <dirs> | -author <alias> [-folders <dirs>]) [options...]
		`))
		fmt.Println(description)
		fmt.Println()
		flagSet.PrintDefaults()
	}

	return command{
		flagSet:     flagSet,
		description: description,
		run: func(args []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}

			set := setFlags(flagSet)
			if set["folders"] {
				cfg.Folders = scope.Parse(*folders)
			}
			if set["author"] {
				cfg.Author = *author
			}
			if set["since"] {
				cfg.Since = *since
			}
			if set["until"] {
				cfg.Until = *until
			}
			if set["min-activity"] {
				cfg.MinActivity = *minActivity
			}
			if set["floor"] {
				cfg.DisplayFloor = *floor
			}
			if *noMailmap {
				cfg.Mailmap = false
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			displayFloor, err := percent.Parse(cfg.DisplayFloor)
			if err != nil {
				return err
			}

			return runReport(*cfg, displayFloor)
		},
	}
}

func runReport(cfg config.Config, displayFloor decimal.Decimal) error {
	opts := subcommands.ReportOpts{
		Since:        cfg.Since,
		Until:        cfg.Until,
		MinActivity:  cfg.MinActivity,
		DisplayFloor: displayFloor,
		UseMailmap:   cfg.Mailmap,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
	}

	folders := scope.Scopes(cfg.Folders)

	switch {
	case cfg.Author != "":
		return subcommands.Author(cfg.Author, folders, opts)
	case len(folders) > 0:
		return subcommands.Folders(folders, opts)
	default:
		return errors.New("one of -folders or -author is required")
	}
}

func dumpCmd() command {
	flagSet := flag.NewFlagSet("conway dump", flag.ExitOnError)

	filterFlags := addFilterFlags(flagSet)

	return command{
		flagSet: flagSet,
		run: func(args []string) error {
			return subcommands.Dump(
				os.Stdout,
				args,
				filterFlags.logFilters(),
				!*filterFlags.noMailmap,
			)
		},
	}
}

func parseCmd() command {
	flagSet := flag.NewFlagSet("conway parse", flag.ExitOnError)

	filterFlags := addFilterFlags(flagSet)

	return command{
		flagSet: flagSet,
		run: func(args []string) error {
			return subcommands.Parse(
				os.Stdout,
				args,
				filterFlags.logFilters(),
				!*filterFlags.noMailmap,
			)
		},
	}
}

// -^---------------------------------------------------------------------------

func configureLogging(level slog.Level) {
	handler := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

func logger() *slog.Logger {
	return slog.Default().With("package", "main")
}

// Names of the flags given on the command line, as opposed to left at their
// defaults.
func setFlags(set *flag.FlagSet) map[string]bool {
	given := map[string]bool{}
	set.Visit(func(f *flag.Flag) {
		given[f.Name] = true
	})

	return given
}

type filterFlags struct {
	since     *string
	until     *string
	noMailmap *bool
	authors   flagutils.SliceFlag
}

func (f *filterFlags) logFilters() cmd.LogFilters {
	return cmd.LogFilters{
		Since:   *f.since,
		Until:   *f.until,
		Authors: f.authors,
	}
}

func addFilterFlags(set *flag.FlagSet) *filterFlags {
	flags := filterFlags{
		since: set.String("since", "", strings.TrimSpace(`
Only count commits after the given date. See git-log(1) for valid date formats
		`)),
		until: set.String("until", "", strings.TrimSpace(`
Only count commits before the given date. See git-log(1) for valid date formats
		`)),
		noMailmap: set.Bool("no-mailmap", false, "Ignore .mailmap files"),
	}

	set.Var(&flags.authors, "author", strings.TrimSpace(`
Only count commits by these authors. Can be specified multiple times
	`))

	return &flags
}
