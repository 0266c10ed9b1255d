package main

import (
	"os"

	"github.com/spf13/cobra"
)

// stdoutFile returns the command's output as *os.File when it is one, so
// color detection only fires for real terminals.
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}

	return nil
}
