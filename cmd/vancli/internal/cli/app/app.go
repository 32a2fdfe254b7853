// Package app contains the app entry point.
package app

import (
	"os"

	"github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/root"
	"github.com/everyaction/everyaction-go/internal/version"
)

// Run the app. This is the main app entry point
func Run() error {
	root.Cmd.Version(version.Version)
	_, err := root.Cmd.Parse(os.Args[1:])
	return err
}
