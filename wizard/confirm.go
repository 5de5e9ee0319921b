package wizard

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pretty"
	"github.com/spf13/cobra"
)

const (
	newline         = '\n'
	UNIX_NEWLINE    = "\n"
	WINDOWS_NEWLINE = "\r\n"
)

var (
	// ErrConfirmationRequired is returned when confirmation is needed
	// but stdin is not a terminal and --yes was not given.
	ErrConfirmationRequired = errors.New("confirmation required: use --yes flag in non-interactive mode")
)

type Validator func(string) bool

func memberValidation(members []string, erratic string) Validator {
	return func(input string) bool {
		for _, member := range members {
			if input == member {
				return true
			}
		}
		common.Stdout("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
		return false
	}
}

func ask(question, defaults string, validator Validator) (string, error) {
	for {
		common.Stdout("%s? %s%s %s[%s]:%s ", pretty.Green, pretty.White, question, pretty.Grey, defaults, pretty.Reset)
		source := bufio.NewReader(os.Stdin)
		reply, err := source.ReadString(newline)
		common.Stdout("\n")
		if err != nil {
			return "", err
		}
		if reply == UNIX_NEWLINE || reply == WINDOWS_NEWLINE {
			reply = defaults
		}
		reply = strings.TrimSpace(reply)
		if !validator(reply) {
			continue
		}
		return reply, nil
	}
}

// Confirm asks a yes/no question, defaulting to no. With force it
// answers yes without prompting; without a terminal it refuses.
func Confirm(question string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !pretty.Interactive {
		return false, ErrConfirmationRequired
	}
	validator := memberValidation([]string{"y", "Y", "n", "N"}, "Please answer 'y' or 'n'.")
	response, err := ask(question, "n", validator)
	if err != nil {
		return false, err
	}
	confirmed := response == "y" || response == "Y"
	if !confirmed {
		common.Stdout("%sOperation cancelled.%s\n", pretty.Grey, pretty.Reset)
	}
	return confirmed, nil
}

// AddYesFlag registers the conventional --yes/-y flag on a command.
func AddYesFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVarP(target, "yes", "y", false, "Skip confirmation prompt")
}
