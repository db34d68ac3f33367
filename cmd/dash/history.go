package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renato0307/dash/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently run actions, most recent first",
	Long: `Show recently run actions, most recent first. Entries whose label no
longer exists in the menu are not shown.`,
	Args: cobra.NoArgs,
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

		entries := session.History().Entries()
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
			return nil
		}
		for i, label := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i+1, label)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every recently run action",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := newHost(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer h.Close()

		history.New(cfg.HistoryStore(), nil, h.backend).Clear(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
