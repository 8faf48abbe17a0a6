// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

// dropdown-demo is a small interactive showcase for the Canopy
// dropdown widget: a page of independent dropdowns with keyboard and
// mouse interaction, typeahead, and mutual exclusion (opening one
// menu closes the others).
//
// By default the demo runs a built-in form. Pass --form to load a
// page definition from a YAML or JSONC file instead.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/canopy-ui/dropdown/lib/dropdown"
	"github.com/canopy-ui/dropdown/lib/page"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var formPath string
	var logOutput string

	flagSet := pflag.NewFlagSet("dropdown-demo", pflag.ContinueOnError)
	flagSet.StringVar(&formPath, "form", "", "page definition file (.yaml, .yml, .json, or .jsonc)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records (including every selection) to this file")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	definition := defaultDefinition()
	if formPath != "" {
		loaded, err := page.LoadDefinition(formPath)
		if err != nil {
			return err
		}
		definition = loaded
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if logOutput != "" {
		file, err := os.Create(logOutput)
		if err != nil {
			return fmt.Errorf("cannot open log file %s: %w", logOutput, err)
		}
		defer file.Close()
		logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Pin the color profile so the palette renders the same across
	// terminals (bubbletea's alt screen re-detects otherwise).
	lipgloss.SetColorProfile(termenv.ANSI256)

	model := page.NewPage(definition, logger)
	model.Subscribe(func(selection dropdown.SelectionMsg) {
		logger.Debug("subscriber notified",
			"dropdown", selection.ID,
			"value", selection.Value,
		)
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}

// defaultDefinition is the built-in showcase form.
func defaultDefinition() *page.Definition {
	return &page.Definition{
		Title: "Canopy dropdown demo",
		Dropdowns: []page.DropdownDef{
			{
				ID:          "environment",
				Label:       "Environment",
				Placeholder: "Choose environment…",
				Options: []page.OptionDef{
					{Label: "Development", Value: "dev"},
					{Label: "Staging", Value: "staging"},
					{Label: "Production", Value: "prod"},
				},
			},
			{
				ID:          "region",
				Label:       "Region",
				Placeholder: "Choose region…",
				MaxVisible:  5,
				Options: []page.OptionDef{
					{Label: "us-east-1", Value: "us-east-1"},
					{Label: "us-west-2", Value: "us-west-2"},
					{Label: "eu-central-1", Value: "eu-central-1"},
					{Label: "eu-west-1", Value: "eu-west-1"},
					{Label: "ap-southeast-1", Value: "ap-southeast-1"},
					{Label: "ap-northeast-1", Value: "ap-northeast-1"},
					{Label: "sa-east-1", Value: "sa-east-1"},
				},
			},
			{
				ID:          "tier",
				Label:       "Instance tier",
				Placeholder: "Choose tier…",
				Options: []page.OptionDef{
					{Label: "Micro (1 vCPU, 1 GiB)", Value: "micro"},
					{Label: "Small (2 vCPU, 4 GiB)", Value: "small"},
					{Label: "Large (8 vCPU, 32 GiB)", Value: "large"},
				},
			},
		},
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Canopy dropdown demo — interactive terminal dropdowns.

Keyboard: Tab moves between fields, Enter/Space/↓ opens the focused
menu, ↑/↓/Home/End navigate, typing jumps to the best fuzzy match,
Enter selects, Esc closes. Mouse: click a trigger to toggle, click an
option to select, click anywhere else to close, right-click a field to
copy its value.

Usage:
  dropdown-demo [flags]

Examples:
  # Run the built-in form
  dropdown-demo

  # Load a form definition and record selections
  dropdown-demo --form deploy.yaml --log-output selections.jsonl

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
