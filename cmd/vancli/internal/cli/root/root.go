// Package root holds the root command every subcommand registers
// against.
package root

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/log/handlers/cli"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/vancli"
	"github.com/everyaction/everyaction-go/internal/version"
)

// Cmd is the root command
var Cmd = kingpin.New("vancli", "Command line client for the EveryAction API")

// Command is syntax sugar for defining sub-commands
var Command = Cmd.Command

// Home returns the vancli home directory, honoring --home. Available
// once flags are parsed.
var Home func() (string, error)

// Init should be called by all subcommands that need a configured API
// client.
var Init func() (*vancli.Context, error)

func init() {
	home := Cmd.Flag("home", "Set a custom vancli home directory").String()
	verbose := Cmd.Flag("verbose", "Enable verbose log output.").Short('v').Bool()

	Cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		if *verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("vancli version %s", version.Version)
		}

		Home = func() (string, error) {
			if *home != "" {
				return *home, nil
			}
			return vancli.DefaultHome()
		}

		Init = func() (*vancli.Context, error) {
			dir, err := Home()
			if err != nil {
				return nil, err
			}
			return vancli.New(dir)
		}

		return nil
	})
}
