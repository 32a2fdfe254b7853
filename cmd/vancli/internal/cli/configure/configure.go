// Package configure implements the `vancli configure` command.
package configure

import (
	"context"

	"github.com/AlecAivazis/survey/v2"
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/root"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/vancli"
)

func init() {
	cmd := root.Command("configure", "Interactively configure the API credentials")

	cmd.Action(func(_ *kingpin.ParseContext) error {
		home, err := root.Home()
		if err != nil {
			return err
		}
		settings, err := vancli.ReadSettings(home)
		if err != nil {
			return err
		}

		if err := survey.AskOne(&survey.Input{
			Message: "Application name:",
			Default: settings.AppName,
		}, &settings.AppName); err != nil {
			return err
		}
		if err := survey.AskOne(&survey.Password{
			Message: "API key:",
		}, &settings.APIKey); err != nil {
			return err
		}
		if err := survey.AskOne(&survey.Select{
			Message: "Endpoint:",
			Options: []string{"US", "INTL"},
			Default: "US",
		}, &settings.Endpoint); err != nil {
			return err
		}
		if err := survey.AskOne(&survey.Select{
			Message: "Database mode:",
			Options: []string{"VoterFile", "MyCampaign"},
			Default: "VoterFile",
		}, &settings.Mode); err != nil {
			return err
		}

		if err := vancli.WriteSettings(home, settings); err != nil {
			return err
		}
		log.Infof("settings written to %s", home)

		// verify the credentials right away so that a typo surfaces
		// here rather than in the next command
		vctx, err := vancli.New(home)
		if err != nil {
			return err
		}
		profile, err := vctx.Client.APIKeyProfile(context.Background())
		if err != nil {
			log.WithError(err).Warn("could not verify the credentials")
			return nil
		}
		username, _ := profile.GetString("username")
		log.Infof("credentials verified for %s", username)
		return nil
	})
}
