package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shortcuts/internal/clipboard"
	"shortcuts/internal/render"
)

func newExportCommand(opts *rootOptions, copyText func(string) (clipboard.Method, error)) *cobra.Command {
	var toClipboard bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print effective shortcuts in the override file format",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, _ []string, s *session) error {
			state, err := s.fetch(cmd.Context())
			if err != nil {
				return err
			}
			data, err := render.JSON(state.Bindings())
			if err != nil {
				return err
			}
			if !toClipboard {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			method, err := copyText(string(data))
			if err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "copied %d shortcuts to clipboard (%s)\n", len(state.Bindings()), method)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&toClipboard, "clipboard", "c", false, "copy to the clipboard instead of printing")
	return cmd
}
