package main

import (
	"github.com/spf13/cobra"

	"shortcuts/internal/shortcuts"
)

func newConflictsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "Report key combos bound to more than one action",
		Long:  "Report key combos bound to more than one action. Exits non-zero when any are found.",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, _ []string, s *session) error {
			state, err := s.fetch(cmd.Context())
			if err != nil {
				return err
			}
			conflicts := shortcuts.DetectConflicts(state.Bindings())
			if len(conflicts) == 0 {
				printf(cmd, "no conflicts\n")
				return nil
			}
			for _, conflict := range conflicts {
				printf(cmd, "%s\n", conflict)
			}
			return errSilentExit
		}),
	}
}
