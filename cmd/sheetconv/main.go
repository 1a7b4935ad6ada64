// Package main provides the CLI entry point for sheetconv.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1dking/Accountant-sub002/pkg/sheet"
	"github.com/1dking/Accountant-sub002/pkg/sheet/search"
)

var (
	outputPath    string
	formatted     bool
	caseSensitive bool
	wholeCell     bool
	logLevel      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetconv",
		Short: "Convert and search accounting spreadsheet files",
		Long: `sheetconv converts spreadsheet data between CSV and xlsx and runs
find/replace over the cell grid.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	convertCmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert between .csv and .xlsx (direction from extensions)",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}
	convertCmd.Flags().BoolVar(&formatted, "formatted", false, "Export display strings instead of raw values")

	findCmd := &cobra.Command{
		Use:   "find [input] [term]",
		Short: "List cells matching a search term",
		Args:  cobra.ExactArgs(2),
		RunE:  runFind,
	}
	findCmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match case exactly")
	findCmd.Flags().BoolVar(&wholeCell, "whole-cell", false, "Require the whole cell value to equal the term")

	replaceCmd := &cobra.Command{
		Use:   "replace [input] [term] [replacement]",
		Short: "Replace every occurrence of a term in matching cells",
		Args:  cobra.ExactArgs(3),
		RunE:  runReplace,
	}
	replaceCmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match case exactly")
	replaceCmd.Flags().BoolVar(&wholeCell, "whole-cell", false, "Require the whole cell value to equal the term")
	replaceCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")

	rootCmd.AddCommand(convertCmd, findCmd, replaceCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, output := args[0], args[1]

	grid, err := sheet.ImportFile(inputPath)
	if err != nil {
		return err
	}
	if formatted {
		grid = sheet.Rendered(grid)
	}

	if err := sheet.ExportFile(grid, output); err != nil {
		return err
	}
	slog.Info("converted", "input", inputPath, "output", output, "cells", len(grid.Cells))
	return nil
}

func runFind(cmd *cobra.Command, args []string) error {
	inputPath, term := args[0], args[1]

	grid, err := sheet.ImportFile(inputPath)
	if err != nil {
		return err
	}

	matches := search.Matches(grid, term, caseSensitive, wholeCell)
	for _, m := range matches {
		fmt.Printf("%s\t%s\n", m.Ref, grid.Value(m.Ref))
	}
	slog.Debug("search done", "term", term, "matches", len(matches))
	return nil
}

func runReplace(cmd *cobra.Command, args []string) error {
	inputPath, term, replacement := args[0], args[1], args[2]

	grid, err := sheet.ImportFile(inputPath)
	if err != nil {
		return err
	}

	engine := search.NewEngine()
	engine.SetQuery(grid, term, replacement, caseSensitive, wholeCell)
	updates := engine.ReplaceAll(grid)
	for _, u := range updates {
		cell := grid.Cells[u.Ref]
		cell.Value = u.Value
		grid.Cells[u.Ref] = cell
	}

	output := outputPath
	if output == "" {
		output = inputPath
	}
	if err := sheet.ExportFile(grid, output); err != nil {
		return err
	}
	slog.Info("replaced", "term", term, "cells", len(updates), "output", output)
	return nil
}

// setupLogging configures the global slog logger.
func setupLogging(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	slog.SetDefault(slog.New(handler))
}
