package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diegoclair/weekend-bot/internal/domain/service"
)

var daysJSON bool

var daysCmd = &cobra.Command{
	Use:   "days <locale>",
	Short: "Print the weekend days of a locale",
	Args:  cobra.ExactArgs(1),
	RunE:  runDays,
}

func init() {
	daysCmd.Flags().BoolVar(&daysJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(daysCmd)
}

func runDays(cmd *cobra.Command, args []string) error {
	report := service.New(nil, "").Weekend.Describe(args[0])

	if daysJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s: %s\n", report.Locale, strings.Join(report.Days, ", "))
	return nil
}
