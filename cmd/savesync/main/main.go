package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/savesync/cmd/savesync"
	"github.com/arthur-debert/savesync/pkg/output"
	"github.com/arthur-debert/savesync/pkg/output/styles"
)

func main() {
	rootCmd := savesync.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		if output.ColorEnabled(os.Stderr) {
			msg = styles.GetStyle("Error").Render(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}
