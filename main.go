package main

import (
	"os"

	"github.com/lexdesk/lexdesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
