package cli

import (
	"github.com/spf13/cobra"

	"github.com/diegoclair/weekend-bot/internal/domain/service"
)

var checkCmd = &cobra.Command{
	Use:   "check <locale> <day>",
	Short: "Tell whether a day is a weekend day for a locale",
	Long: `Prints "weekend" or "workday".
The day can be an English name (friday), an abbreviation (fri) or an
ISO number from 1 (Monday) to 7 (Sunday).`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	isWeekend, err := service.New(nil, "").Weekend.CheckDay(args[0], args[1])
	if err != nil {
		return err
	}

	if isWeekend {
		cmd.Println("weekend")
	} else {
		cmd.Println("workday")
	}
	return nil
}
