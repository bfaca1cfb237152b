package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-signupform/pkg/openapi"
)

func newSchemaCmd(a *app) *cobra.Command {
	var (
		format    string
		serverURL string
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document of the signup endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := a.form()
			if err != nil {
				return err
			}
			doc, err := openapi.Document(form, openapi.WithServerURL(serverURL))
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case "json":
				out, err = openapi.MarshalJSON(doc)
			case "yaml":
				out, err = openapi.MarshalYAML(doc)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, yaml)")
	cmd.Flags().StringVar(&serverURL, "server", "", "server URL to include in the document")
	return cmd
}
