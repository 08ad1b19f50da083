package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shiroyk/searchparams"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "build a query string from a YAML or JSON parameter mapping",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var bytes []byte
		var err error
		if len(args) == 0 || args[0] == "-" {
			bytes, err = io.ReadAll(cmd.InOrStdin())
		} else {
			bytes, err = os.ReadFile(args[0]) //nolint:gosec
		}
		if err != nil {
			return err
		}

		// yaml is a superset of json, one decoder covers both
		var params map[string]any
		if err = yaml.Unmarshal(bytes, &params); err != nil {
			return err
		}

		query, err := searchparams.BuildAny(params)
		if err != nil {
			return err
		}
		slog.Debug("built query string", "pairs", len(params))
		fmt.Fprintln(cmd.OutOrStdout(), query)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
