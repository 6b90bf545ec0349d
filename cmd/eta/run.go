/*
File    : eta/cmd/eta/run.go
*/
package main

import (
	"fmt"

	"eta/driver"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run an eta source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		code := driver.RunFile(args[0])
		if code != 0 {
			return fmt.Errorf("execution failed")
		}
		return nil
	},
}
