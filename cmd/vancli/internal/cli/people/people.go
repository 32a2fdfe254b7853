// Package people implements the `vancli people` commands.
package people

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	everyaction "github.com/everyaction/everyaction-go"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/root"
)

func init() {
	cmd := root.Command("people", "Look up person records")

	find := cmd.Command("find", "Find a person by identifying attributes")
	findFirst := find.Flag("first", "First name.").String()
	findLast := find.Flag("last", "Last name.").String()
	findEmail := find.Flag("email", "Email address.").String()
	findPhone := find.Flag("phone", "Phone number.").String()

	find.Action(func(_ *kingpin.ParseContext) error {
		vctx, err := root.Init()
		if err != nil {
			return err
		}
		args := everyaction.Args{}
		if *findFirst != "" {
			args["first"] = *findFirst
		}
		if *findLast != "" {
			args["last"] = *findLast
		}
		if *findEmail != "" {
			args["email"] = *findEmail
		}
		if *findPhone != "" {
			args["phone"] = *findPhone
		}
		person, err := vctx.Client.People.Find(context.Background(), args)
		if err != nil {
			log.WithError(err).Error("find failed")
			return err
		}
		if person == nil {
			log.Info("no matching person")
			return nil
		}
		fmt.Println(person)
		return nil
	})

	get := cmd.Command("get", "Retrieve a person record by VAN ID")
	getVanID := get.Arg("vanId", "The VAN ID of the person.").Required().Int()
	getExpand := get.Flag("expand", "Record sections to include, repeatable.").Strings()

	get.Action(func(_ *kingpin.ParseContext) error {
		vctx, err := root.Init()
		if err != nil {
			return err
		}
		args := everyaction.Args{}
		if len(*getExpand) > 0 {
			args["expand"] = *getExpand
		}
		person, err := vctx.Client.People.Get(context.Background(), *getVanID, args)
		if err != nil {
			log.WithError(err).Error("get failed")
			return err
		}
		for _, name := range person.Fields() {
			value, err := person.Get(name)
			if err != nil {
				continue
			}
			fmt.Printf("%s: %v\n", name, value)
		}
		return nil
	})
}
