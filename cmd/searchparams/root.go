package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var debugArg bool

var rootCmd = &cobra.Command{
	Use:   "searchparams",
	Short: "searchparams converts between query strings and parameter mappings.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		opt := new(slog.HandlerOptions)
		if debugArg {
			opt.Level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opt)))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// Execute main command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the first argument, or reads stdin when the
// argument is absent or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	bytes, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	s := string(bytes)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugArg, "debug", "d", false, "output the debug log")
}
