package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shortcuts/internal/render"
)

const (
	listFormatTable = "table"
	listFormatPlain = "plain"
	listFormatJSON  = "json"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List effective shortcuts",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, _ []string, s *session) error {
			state, err := s.fetch(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch strings.ToLower(strings.TrimSpace(format)) {
			case "", listFormatTable:
				return render.Table(out, render.Rows(state.Bindings(), s.controller.Defaults()))
			case listFormatPlain:
				return render.Plain(out, render.Rows(state.Bindings(), s.controller.Defaults()))
			case listFormatJSON:
				data, err := render.JSON(state.Bindings())
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			default:
				return fmt.Errorf("unknown format %q (want table, plain or json)", format)
			}
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "f", listFormatTable, "output format: table, plain or json")
	return cmd
}
