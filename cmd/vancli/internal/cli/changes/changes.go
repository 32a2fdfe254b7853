// Package changes implements the `vancli changes` commands.
package changes

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	everyaction "github.com/everyaction/everyaction-go"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/root"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/vancli"
	"github.com/everyaction/everyaction-go/internal/vandb"
	"github.com/schollz/progressbar/v3"
)

func init() {
	cmd := root.Command("changes", "Track changed entities in a local database")

	sync := cmd.Command("sync", "Download changed entities into the local database")
	syncResource := sync.Flag("resource", "Changed-entity resource type.").Default("Contacts").String()
	syncFrom := sync.Flag("from", "Start of the change window, ISO-8601. Defaults to 24 hours ago.").String()
	syncTo := sync.Flag("to", "End of the change window, ISO-8601.").String()
	syncEntityKey := sync.Flag("entity-key", "Exported column carrying the entity identifier.").Default("VanID").String()

	sync.Action(func(_ *kingpin.ParseContext) error {
		vctx, err := root.Init()
		if err != nil {
			return err
		}
		sess, err := vandb.Connect(vancli.DatabasePath(vctx.Home))
		if err != nil {
			log.WithError(err).Error("opening the local database failed")
			return err
		}
		defer sess.Close()
		from := *syncFrom
		if from == "" {
			from = time.Now().UTC().AddDate(0, 0, -1).Format(time.RFC3339)
		}
		args := everyaction.Args{
			"resourceType":    *syncResource,
			"dateChangedFrom": from,
		}
		if *syncTo != "" {
			args["dateChangedTo"] = *syncTo
		}
		run, err := vandb.CreateSyncRun(sess, *syncResource)
		if err != nil {
			return err
		}
		log.Infof("requesting %s changes since %s", *syncResource, from)
		rows, err := vctx.Client.ChangedEntities.Changes(context.Background(), args)
		if err != nil {
			log.WithError(err).Error("downloading changes failed")
			return err
		}
		bar := progressbar.NewOptions64(
			int64(len(rows)),
			progressbar.OptionShowDescriptionAtLineEnd(),
			progressbar.OptionSetDescription("storing changes"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stdout, "\n")
			}),
			progressbar.OptionSetWriter(os.Stdout),
		)
		total := 0
		for _, row := range rows {
			n, err := vandb.InsertChanges(sess, run, *syncEntityKey, []everyaction.Args{row})
			if err != nil {
				return err
			}
			total += n
			bar.Add(1)
		}
		if err := vandb.FinishSyncRun(sess, run, total); err != nil {
			return err
		}
		log.Infof("stored %d changes for %s", total, *syncResource)
		return nil
	})

	runs := cmd.Command("runs", "Show the recorded sync runs")

	runs.Action(func(_ *kingpin.ParseContext) error {
		home, err := root.Home()
		if err != nil {
			return err
		}
		sess, err := vandb.Connect(vancli.DatabasePath(home))
		if err != nil {
			log.WithError(err).Error("opening the local database failed")
			return err
		}
		defer sess.Close()
		recorded, err := vandb.ListSyncRuns(sess)
		if err != nil {
			return err
		}
		for _, run := range recorded {
			status := "running"
			if run.Done {
				status = fmt.Sprintf("%d rows in %.1fs", run.RowCount, run.Runtime)
			}
			fmt.Printf("#%d %s %s: %s\n", run.ID,
				run.StartTime.Format(time.RFC3339), run.Resource, status)
		}
		return nil
	})
}
