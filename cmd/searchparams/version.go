package main

import (
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commitSHA = "unknown"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("searchparams %v/%v\n", version, commitSHA)
		},
	})
}
