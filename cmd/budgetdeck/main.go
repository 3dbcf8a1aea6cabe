// Package main provides the CLI entry point for budgetdeck-go.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck"
	"github.com/ukaji3/budgetdeck-go/pkg/budgetdeck/pptx"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// pauseOnExit is set by the report command only.
var pauseOnExit bool

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("12")).
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 2)

func main() {
	rootCmd := &cobra.Command{
		Use:   "budgetdeck",
		Short: "Build the budget-vs-actual slide report",
		Long: `budgetdeck reads budget and actual figures from ./budget.xlsx and writes
a PPTX report named <prefix>_<YYMMDD>.pptx. Settings come from budgetdeck.yaml
in the working directory when it exists.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	rootCmd.AddCommand(versionCmd(), inspectCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	if pauseOnExit {
		waitAnyKey(os.Stdin, os.Stdout)
	}
	if err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	pauseOnExit = true
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	fmt.Fprintln(cmd.OutOrStdout(), bannerStyle.Render(fmt.Sprintf("budgetdeck %s", version)))

	opts, found, err := budgetdeck.LoadOptionsIfExists(budgetdeck.DefaultConfigFile)
	if err != nil {
		return err
	}
	if found {
		logger.Info().Str("file", budgetdeck.DefaultConfigFile).Msg("Loaded configuration")
	}

	path, err := budgetdeck.Run(ctx, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Report failed")
		return err
	}
	logger.Info().Str("file", path).Msg("Done")
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "budgetdeck %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// inspectCmd lists the slides of a written report.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [report.pptx]",
		Short: "List the slide titles of a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			texts, err := pptx.ReadText(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, s := range texts {
				title := strings.SplitN(s.Title(), "\n", 2)[0]
				fmt.Fprintf(out, "%3d  %s\n", i+1, title)
			}
			return nil
		},
	}
}
