package cmd

import (
	"time"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/journal"
	"github.com/dashlaunch/dashlaunch/operations"
	"github.com/dashlaunch/dashlaunch/pretty"
	"github.com/dashlaunch/dashlaunch/xviper"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the launch journal of this machine.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		events, err := journal.Events()
		pretty.Guard(err == nil, common.ExitPrecondition, "Error: could not read journal, reason: %v", err)
		if len(events) == 0 {
			pretty.Note("Journal is empty. Nothing has been launched from this home yet.")
			return
		}
		common.Stdout("Journal of %s (identity %s, %d launches):\n", common.Product.Home(), xviper.TrackingIdentity(), xviper.GetInt64(operations.LaunchCountKey))
		for _, event := range events {
			when := time.Unix(event.When, 0).Format(time.RFC3339)
			common.Stdout("%s  %-12s  %-24s  %s\n", when, event.Event, event.Detail, event.Comment)
		}
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
}
