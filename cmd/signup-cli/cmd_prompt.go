package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-signupform/pkg/renderers/tui"
)

func newPromptCmd(a *app) *cobra.Command {
	var maxAttempts int

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the signup form in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := a.form()
			if err != nil {
				return err
			}
			r, err := tui.New(
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithMaxAttempts(maxAttempts),
				tui.WithLogger(a.logger.Sugar()),
			)
			if err != nil {
				return err
			}

			if _, err := r.Run(cmd.Context(), form); err != nil {
				if errors.Is(err, tui.ErrAborted) || errors.Is(err, tui.ErrTooManyAttempts) {
					return exitError{code: 1}
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "You are signed up.")
			return nil
		},
	}
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "give up after this many rejected submissions (0 = unlimited)")
	return cmd
}
