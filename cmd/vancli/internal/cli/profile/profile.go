// Package profile implements the `vancli profile` command.
package profile

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/root"
	"github.com/mitchellh/go-wordwrap"
)

func init() {
	cmd := root.Command("profile", "Show the profile of the configured API key")

	districts := cmd.Flag("districts", "Also list the district fields visible to the key.").Bool()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		vctx, err := root.Init()
		if err != nil {
			return err
		}
		ctx := context.Background()

		profile, err := vctx.Client.APIKeyProfile(ctx)
		if err != nil {
			log.WithError(err).Error("failed to fetch the API key profile")
			return err
		}
		for _, name := range profile.Fields() {
			value, err := profile.Get(name)
			if err != nil {
				continue
			}
			fmt.Printf("%s: %s\n", name, wordwrap.WrapString(fmt.Sprintf("%v", value), 72))
		}

		if *districts {
			fields, err := vctx.Client.DistrictFields.List(ctx, nil)
			if err != nil {
				log.WithError(err).Error("failed to list district fields")
				return err
			}
			for _, field := range fields {
				name, _ := field.GetString("name")
				id, _ := field.GetInt("id")
				fmt.Printf("district field %d: %s\n", id, name)
			}
		}

		return nil
	})
}
