package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cyra-health/cyra/internal/cli"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "cyra-admin",
	Short: "Administrative tooling for a Cyra instance",
	Long:  "cyra-admin runs maintenance tasks against a Cyra SQLite database, such as resetting a locked-out user's password.",
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <email>",
	Short: "Reset a user's password to a generated temporary one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		temporary, err := cli.ResetPassword(dbPath, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Password reset successful")
		fmt.Fprintf(cmd.OutOrStdout(), "Temporary password: %s\n", temporary)
		fmt.Fprintln(cmd.OutOrStdout(), "The user must change it on next login.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", filepath.Join("data", "cyra.db"), "Path to the Cyra SQLite database")
	rootCmd.AddCommand(resetPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
