package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renato0307/dash/internal/commands"
	"github.com/renato0307/dash/internal/types"
	"github.com/renato0307/dash/internal/ui"
)

var execCmd = &cobra.Command{
	Use:     "exec <label>",
	Short:   "Run the action with the given label and record it in the history",
	Example: `  dash exec "Tools > System > Uptime"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]

		h, err := newHost(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer h.Close()

		session, err := h.open(cmd.Context())
		if err != nil {
			return err
		}

		action, ok := session.Confirm(cmd.Context(), label)
		if !ok {
			return fmt.Errorf("unknown action %q (see dash list)", label)
		}

		theme := ui.GetTheme(cfg.UI.Theme)
		if err := action(); err != nil && !errors.Is(err, commands.ErrQuit) {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderMessage(fmt.Sprintf("%s failed: %v", label, err), types.MessageTypeError, theme, 80))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderMessage("Ran "+label, types.MessageTypeSuccess, theme, 80))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
