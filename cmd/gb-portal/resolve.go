package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/h44z/groupbackend-portal/internal/adapters"
	"github.com/h44z/groupbackend-portal/internal/app/api/v0/model"
	"github.com/h44z/groupbackend-portal/internal/app/groupbackend"
	"github.com/h44z/groupbackend-portal/internal/app/i18n"
)

var resolveOpts struct {
	Type        string
	Resource    string
	UserBackend string
	Language    string
	Json        bool
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved user group backend form",
	Long: `Resolve runs a single resolution pass against the configured directory resources and
prints the resulting form fields with their defaults and disable policy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		directory := adapters.NewDirectoryRepository(&cfg.Directory, cfg.Advanced.ProbeTimeout)
		resolver := groupbackend.NewResolver(directory, directory, directory)

		res, err := resolver.Resolve(cmd.Context(), groupbackend.FormInput{
			Type:        resolveOpts.Type,
			Resource:    resolveOpts.Resource,
			UserBackend: resolveOpts.UserBackend,
		})
		if err != nil {
			return fmt.Errorf("failed to resolve form: %w", err)
		}

		lang := resolveOpts.Language
		if lang == "" {
			lang = cfg.Web.DefaultLanguage
		}
		form := model.NewForm(groupbackend.FormFor(res, i18n.NewTranslator(lang).Printer(lang)))

		if resolveOpts.Json {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(form)
		}

		return printForm(cmd.OutOrStdout(), form)
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveOpts.Type, "type", "t", "ldap", "directory flavor, ldap or msldap")
	resolveCmd.Flags().StringVarP(&resolveOpts.Resource, "resource", "r", "", "name of the LDAP resource")
	resolveCmd.Flags().StringVarP(&resolveOpts.UserBackend, "user-backend", "u", "",
		"name of the linked user backend")
	resolveCmd.Flags().StringVarP(&resolveOpts.Language, "lang", "l", "", "language of labels and descriptions")
	resolveCmd.Flags().BoolVar(&resolveOpts.Json, "json", false, "print the form as JSON")

	rootCmd.AddCommand(resolveCmd)
}

func printForm(out io.Writer, form model.Form) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "FIELD\tVALUE\tDISABLED\tLABEL")
	for _, f := range form.Fields {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Value, f.DisablePolicy, f.Label)
	}
	return tw.Flush()
}
