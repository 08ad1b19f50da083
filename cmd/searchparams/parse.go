package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shiroyk/searchparams"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	parseFormatArg string
	parseOutputArg string
)

var parseCmd = &cobra.Command{
	Use:   "parse [query]",
	Short: "parse a query string into its parameters",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		params := searchparams.Parse(stripQuery(query))
		slog.Debug("parsed query string", "pairs", len(params))
		return writeOutput(cmd, params, parseFormatArg, parseOutputArg)
	},
}

// stripQuery drops the "?" and "#fragment" URL delimiters. The library
// expects the bare query string, the command accepts the full tail.
func stripQuery(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "?")
	if i := strings.IndexByte(s, '#'); i != -1 {
		s = s[:i]
	}
	return s
}

func writeOutput(cmd *cobra.Command, data any, format, output string) error {
	var bytes []byte
	var err error
	switch format {
	case "yaml", "yml":
		bytes, err = yaml.Marshal(data)
	case "json":
		bytes, err = json.MarshalIndent(data, "", "\t")
		bytes = append(bytes, '\n')
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(bytes)
		return err
	}

	if filepath.Ext(output) == "" {
		output += "." + format
	}
	return os.WriteFile(output, bytes, 0o600)
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormatArg, "format", "f", "json", "output format (json or yaml)")
	parseCmd.Flags().StringVarP(&parseOutputArg, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(parseCmd)
}
