// Package lists implements the `vancli lists` command.
package lists

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	everyaction "github.com/everyaction/everyaction-go"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/root"
)

func init() {
	cmd := root.Command("lists", "Show the saved lists visible to the API key")
	limit := cmd.Flag("limit", "Maximum number of lists to fetch, 0 for all.").Default("0").Int()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		vctx, err := root.Init()
		if err != nil {
			return err
		}
		lists, err := vctx.Client.SavedLists.List(context.Background(), everyaction.Args{
			"limit": *limit,
		})
		if err != nil {
			log.WithError(err).Error("listing saved lists failed")
			return err
		}
		for _, list := range lists {
			id, _ := list.GetInt("savedListId")
			name, _ := list.GetString("name")
			count, _ := list.GetInt("listCount")
			fmt.Printf("%8d %s (%d people)\n", id, name, count)
		}
		return nil
	})
}
