// Package version implements the `vancli version` command.
package version

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/root"
	"github.com/everyaction/everyaction-go/internal/version"
)

func init() {
	cmd := root.Command("version", "Show the vancli version")

	cmd.Action(func(_ *kingpin.ParseContext) error {
		fmt.Println(version.Version)
		return nil
	})
}
