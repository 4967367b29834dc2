// Package cli implements the weekend command line tool.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weekend",
	Short: "Weekend days by locale",
	Long: `Tells which days make up the weekend for a locale.
Arabic locales (ar-*), he-IL, fa-IR and ur-PK rest on Friday and Saturday,
every other locale on Saturday and Sunday.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
