package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/state"
)

func newValidateCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Validate a YAML or JSON submission",
		Long: `Validate reads a submission keyed by form field name (email, password,
confirm-password, first-name, last-name, role, terms, acquisition) and prints
the result. The exit status is 1 when the submission is rejected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			values, err := readValues(cmd.InOrStdin(), source)
			if err != nil {
				return err
			}

			container := state.New(state.WithID("cli"), state.WithLogger(a.logger.Sugar()))
			result, err := container.Submit(cmd.Context(), values)
			if err != nil {
				return err
			}
			if err := writeResult(cmd.OutOrStdout(), output, result); err != nil {
				return err
			}
			if !result.OK() {
				return exitError{code: 1}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")
	return cmd
}

func readValues(stdin io.Reader, source string) (model.Values, error) {
	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return model.Values{}, fmt.Errorf("read submission: %w", err)
	}

	var values model.Values
	if err := yaml.Unmarshal(data, &values); err != nil {
		return model.Values{}, fmt.Errorf("parse submission: %w", err)
	}
	return values, nil
}

func writeResult(w io.Writer, format string, result model.Result) error {
	switch format {
	case "json":
		if result.Errors == nil {
			result.Errors = []string{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "text", "":
		if result.OK() {
			_, err := fmt.Fprintln(w, "valid")
			return err
		}
		for _, message := range result.Errors {
			if _, err := fmt.Fprintf(w, "- %s\n", message); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
