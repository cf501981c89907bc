package main

import (
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open an interactive keypad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debug("starting keypad", "dark", a.cfg.Dark())
			return tui.Run(a.cfg.Dark(), a.cfg.Options()...)
		},
	}
	cmd.Flags().Bool("dark", false, "start with the dark theme")
	return cmd
}
