package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renato0307/dash/internal/app"
	"github.com/renato0307/dash/internal/config"
	"github.com/renato0307/dash/internal/keyboard"
	"github.com/renato0307/dash/internal/logging"
	"github.com/renato0307/dash/internal/ui"
)

// cfg is loaded once per invocation before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "dash searches a nested menu by breadcrumb and runs the chosen action",
	Long: `dash flattens a menu file into "Menu > Item" labels, lets you search them,
and remembers the actions you run most recently.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("menu") {
			loaded.Menu, _ = cmd.Flags().GetString("menu")
		}
		if cmd.Flags().Changed("theme") {
			loaded.UI.Theme, _ = cmd.Flags().GetString("theme")
		}
		if cmd.Flags().Changed("log-file") {
			loaded.Log.File, _ = cmd.Flags().GetString("log-file")
		}
		cfg = loaded

		if err := logging.Init(cfg.Logging()); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.Debug("configuration loaded",
			"menu", cfg.Menu,
			"history_backend", cfg.History.Backend,
			"history_capacity", cfg.History.Capacity,
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Shutdown()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := newHost(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer h.Close()

		theme := ui.GetTheme(cfg.UI.Theme)
		model := app.NewModel(app.Options{
			MenuSource: h.menuSource(),
			Load:       h.loadMenu,
			History:    cfg.HistoryStore(),
			Backend:    h.backend,
			Theme:      theme,
			Keys:       keyboard.WithDashKey(cfg.UI.DashKey),
		})

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/dash/config.yaml)")
	rootCmd.PersistentFlags().String("menu", "", "Menu file (YAML or JSON); the built-in demo menu is used when empty")
	rootCmd.PersistentFlags().String("theme", "charm", fmt.Sprintf("Theme to use %v", ui.AvailableThemes()))
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
}
