package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List the action labels of the menu, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := newHost(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer h.Close()

		session, err := h.open(cmd.Context())
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		for _, label := range session.Match(query) {
			fmt.Fprintln(cmd.OutOrStdout(), label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
