/*
File    : eta/cmd/eta/root.go
*/
package main

import (
	"os"

	"eta/driver"
	"eta/repl"

	"github.com/spf13/cobra"
)

const (
	version = "v1.0.0"
	author  = "eta contributors"
	license = "MIT"
	prompt  = "eta >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
  ▄▄▄▄▄▄▄    ▄▄▄▄▄▄▄       ▄▄▄▄▄▄▄
 ██▀▀▀▀▀    ██▀▀▀▀▀▀      ██▀▀▀▀▀█
 ██▄▄▄▄    ██    ▄▄▄      ██▄▄▄▄▄
 ██▀▀▀▀    ██    ▀▀█  ██       ▀▀█
 ██▄▄▄▄▄    ██▄▄▄▄▄█  ██  █▄▄▄▄▄█
  ▀▀▀▀▀▀▀    ▀▀▀▀▀▀▀    ▀▀▀▀▀▀▀
`

var rootCmd = &cobra.Command{
	Use:     "eta [file]",
	Short:   "eta is a small tree-walking interpreter",
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRoot,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRoot(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		r := repl.NewRepl(banner, version, author, line, license, prompt)
		r.Start(os.Stdout)
		return nil
	}
	os.Exit(driver.RunFile(args[0]))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
