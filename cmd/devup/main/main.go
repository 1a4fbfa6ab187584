package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/devup/cmd/devup"
	"github.com/arthur-debert/devup/pkg/style"
)

func main() {
	rootCmd := devup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
