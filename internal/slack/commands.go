package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdDays  CommandType = "days"
	CmdCheck CommandType = "check"
	CmdHelp  CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "days", "weekend":
		cmd.Type = CmdDays
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "check", "is":
		cmd.Type = CmdCheck
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Weekend:*
• ` + "`/weekend days`" + ` - Show the weekend days for your Slack locale
• ` + "`/weekend days LOCALE`" + ` - Show the weekend days for a locale (ex: ar-EG, en-US)

*Check a day:*
• ` + "`/weekend check DAY`" + ` - Is DAY a weekend day for your Slack locale? (ex: friday, fri, 5)
• ` + "`/weekend check DAY LOCALE`" + ` - Is DAY a weekend day for LOCALE?

*Help:*
• ` + "`/weekend help`" + ` - Show this message`
}
