package main

import (
	"fmt"
	"os"

	"github.com/dashlaunch/dashlaunch/cmd"
	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pretty"
)

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.EndOfTimeline()
			if exit.Code != common.ExitSuccess {
				pretty.HoldOpen("Press enter to close this window ... ")
			}
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.Fatal("main", fmt.Errorf("process crash: %v", status))
		common.WaitLogs()
		os.Exit(common.ExitPrecondition)
	}
}

func main() {
	common.TimelineBegin("Start %s.", common.Version)
	defer ExitProtection()
	cmd.Execute()
	common.EndOfTimeline()
	common.WaitLogs()
}
