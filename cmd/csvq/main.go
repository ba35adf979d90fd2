// csvq filters and aggregates CSV files from the command line.
//
// Usage:
//
//	csvq --file phones.csv --where "brand=xiaomi" --aggregate "rating=avg"
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/vegasq/csvq/internal/config"
	"github.com/vegasq/csvq/internal/logger"
	"github.com/vegasq/csvq/internal/output"
	"github.com/vegasq/csvq/internal/query"
	"github.com/vegasq/csvq/internal/reader"
)

// MissingFileMessage is listed by RequiredArgumentsError when --file is absent
const MissingFileMessage = "Missing required --file"

// operationExamples documents the built-in operations in --help
var operationExamples = map[string]string{
	query.OperationWhere:     `filter rows, e.g. "brand=xiaomi" or "price>300"`,
	query.OperationAggregate: `aggregate a column, e.g. "rating=avg" (avg, min, max)`,
}

func main() {
	if err := run(os.Args[1:], query.NewRegistry(logger.Discard()), os.Stdout, os.Stderr); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one csvq invocation. Operation flags are generated from
// registry, so operations registered before run get their own flag.
func run(args []string, registry *query.Registry, stdout, stderr io.Writer) error {
	fs := newFlagSet(registry.Names(), stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	// Validate argument count
	unknown := unknownArgs(fs, args)
	if countRecognized(fs, registry.Names()) <= 1 && len(unknown) > 0 {
		return &query.RequiredArgumentsError{Commands: registry.Names()}
	}

	cfg, err := config.Load(fs, registry.Names())
	if err != nil {
		return err
	}

	log := logger.WithRunID(logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, stderr))
	registry.SetLogger(log)
	if len(unknown) > 0 {
		log.Warn("ignoring unrecognized arguments", "args", unknown)
	}

	if cfg.File == "" {
		return &query.RequiredArgumentsError{Commands: []string{MissingFileMessage}}
	}

	formatter, err := output.New(cfg.Format, stdout)
	if err != nil {
		return err
	}

	ds, err := reader.Load(cfg.File)
	if err != nil {
		return err
	}
	log.Debug("file loaded", "file", cfg.File, "rows", ds.Len(), "columns", ds.Columns)

	// A file without data rows skips every operation
	if ds.IsEmpty() {
		return formatter.Format(nil, nil)
	}

	result, err := query.NewExecutor(registry, log).Run(cfg.Commands, ds)
	if err != nil {
		printColumnHint(stderr, err, ds)
		return err
	}

	return formatter.Format(result.Columns, result.Rows)
}

func newFlagSet(operations []string, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("csvq", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SortFlags = false

	fs.String(config.KeyFile, "", "Required argument file link (CSV, .csv.gz, .csv.zst or .parquet)")
	for _, name := range operations {
		usage, ok := operationExamples[name]
		if !ok {
			usage = fmt.Sprintf("%s expression, column<operator><value>", name)
		}
		fs.String(name, "", usage)
	}
	fs.String(config.KeyFormat, output.FormatTable, "Output format: table, csv, json")
	fs.String(config.KeyConfig, "", "Path to a config file")
	fs.String(config.KeyLogLevel, "WARN", "Log level: DEBUG, INFO, WARN, ERROR")
	fs.String(config.KeyLogFormat, "text", "Log format: text, json")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: csvq --file <file.csv> [options]\n\n")
		fmt.Fprintf(stderr, "Filter and aggregate CSV files.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  csvq --file phones.csv --where \"brand=xiaomi\"\n")
		fmt.Fprintf(stderr, "  csvq --file phones.csv --where \"price>300\" --aggregate \"rating=avg\"\n")
		fmt.Fprintf(stderr, "  csvq --file phones.csv.gz --format csv --where \"brand=apple\"\n")
	}

	return fs
}

// countRecognized counts --file and operation flags given a non-empty value
func countRecognized(fs *pflag.FlagSet, operations []string) int {
	count := 0
	for _, name := range append([]string{config.KeyFile}, operations...) {
		if f := fs.Lookup(name); f != nil && f.Changed && f.Value.String() != "" {
			count++
		}
	}
	return count
}

// unknownArgs returns unrecognized flags and stray positional arguments
func unknownArgs(fs *pflag.FlagSet, args []string) []string {
	var unknown []string
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if len(arg) < 2 || arg[0] != '-' || isNumber(arg) {
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		if name == "h" || name == "help" {
			continue
		}
		if !strings.HasPrefix(arg, "--") && len(name) == 1 {
			if fs.ShorthandLookup(name) != nil {
				continue
			}
		} else if fs.Lookup(name) != nil {
			continue
		}
		unknown = append(unknown, arg)
	}
	return append(unknown, fs.Args()...)
}

func isNumber(s string) bool {
	_, ok := query.Coerce(s).(float64)
	return ok
}

// printColumnHint lists the available columns after a missing-column error
func printColumnHint(w io.Writer, err error, ds *query.Dataset) {
	var valid *query.ValidCommandError
	if !errors.As(err, &valid) || valid.Command != query.MsgMissingParameter {
		return
	}
	fmt.Fprintf(w, "Available columns: %s\n", strings.Join(query.GetColumnNames(ds), ", "))
}
