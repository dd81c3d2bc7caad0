// Package main provides the CLI entry point for roomboard.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/roomboard-go/internal/logging"
	"github.com/ukaji3/roomboard-go/pkg/roomboard"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roomboard",
		Short: "Generate the room availability report",
		Long: `roomboard downloads the room booking workbook, extracts the bookable
rooms for every Saturday week and writes a self-contained HTML report.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

// execute runs the root command and returns the process exit code. Every
// failure, argument errors included, is logged once as [ERROR].
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		logging.New(stderr, logging.LevelError).Error("%v", err)
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := roomboard.DefaultConfig()
	if err != nil {
		return err
	}

	log := logging.New(cmd.ErrOrStderr(), logging.LevelInfo)
	if err := roomboard.Run(cmd.Context(), cfg, log); err != nil {
		return err
	}
	log.Info("Done")
	return nil
}
