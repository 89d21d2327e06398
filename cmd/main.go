package main

import (
	"fmt"
	"os"

	"studydesk/internal/cli"
)

var version = "dev"

func main() {
	root := cli.NewRootCommand(cli.Options{
		Version: version,
		RunGUI:  runGUI,
	})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
