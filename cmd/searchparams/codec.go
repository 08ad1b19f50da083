package main

import (
	"fmt"

	"github.com/shiroyk/searchparams"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [component]",
	Short: "percent-encode a query string component",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		component, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), searchparams.EncodeComponent(component))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [component]",
	Short: "decode a percent-encoded query string component",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		component, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), searchparams.DecodeComponent(component))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd, decodeCmd)
}
