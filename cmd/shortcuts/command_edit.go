package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <action> <combo>",
		Short: "Bind an action to a new key combo",
		Example: `  shortcuts set moveCursorUp "alt+arrow up"
  shortcuts set copy ctrl+insert`,
		Args: cobra.ExactArgs(2),
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			ctx := cmd.Context()
			if _, err := s.fetch(ctx); err != nil {
				return err
			}
			action := strings.TrimSpace(args[0])
			state := s.controller.UpdateShortcut(ctx, action, args[1])
			if err := stateError(state); err != nil {
				return err
			}
			combo, _ := state.KeyFor(action)
			printf(cmd, "%s = %s\n", action, combo)
			return nil
		}),
	}
}

func newResetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard all customisations",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, _ []string, s *session) error {
			state := s.controller.ResetToDefaults(cmd.Context())
			if err := stateError(state); err != nil {
				return err
			}
			printf(cmd, "restored %d default shortcuts\n", len(state.Bindings()))
			return nil
		}),
	}
}
