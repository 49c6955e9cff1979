package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/h44z/groupbackend-portal/internal/app/groupbackend"
)

var checkFilterCmd = &cobra.Command{
	Use:   "check-filter <filter>...",
	Short: "Check group or user filters before they are stored",
	Long: `Check-filter applies the same rules as the configuration form: a filter must not be wrapped
in parentheses and must be a valid LDAP expression once the parentheses are added.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed int
		for _, filter := range args {
			err := groupbackend.ValidateFilter(filter)
			switch {
			case err == nil:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", filter)
			case errors.Is(err, groupbackend.ErrFilterWrapped):
				failed++
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "invalid\t%s\t%s\n", filter, groupbackend.MsgFilterWrapped)
			default:
				failed++
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "invalid\t%s\t%v\n", filter, err)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d filters are invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkFilterCmd)
}
