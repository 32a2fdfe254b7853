// Command vanimport bulk loads people into a committee from a CSV file.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/everyaction/everyaction-go"
	"github.com/pborman/getopt/v2"
)

var startTime = time.Now()

type logHandler struct {
	io.Writer
}

func (h *logHandler) HandleLog(e *log.Entry) (err error) {
	s := fmt.Sprintf("[%14.6f] <%s> %s", time.Since(startTime).Seconds(), e.Level, e.Message)
	if len(e.Fields) > 0 {
		s += fmt.Sprintf(": %+v", e.Fields)
	}
	s += "\n"
	_, err = h.Writer.Write([]byte(s))
	return
}

var (
	apiKey   string
	appName  string
	endpoint = "US"
	mode     string
	verbose  bool
)

func init() {
	getopt.FlagLong(&apiKey, "api-key", 'k', "API key (default: $"+everyaction.APIKeyEnv+")")
	getopt.FlagLong(&appName, "app-name", 'a', "Application name (default: $"+everyaction.AppNameEnv+")")
	getopt.FlagLong(&endpoint, "endpoint", 'e', "API endpoint URL or region alias")
	getopt.FlagLong(&mode, "mode", 'm', "Database mode: VoterFile or MyCampaign")
	getopt.FlagLong(&verbose, "verbose", 'v', "Enable verbose logging")
}

func fatalIfFalse(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

func fatalOnError(err error, msg string) {
	if err != nil {
		panic(fmt.Sprintf("%s: %s", msg, err.Error()))
	}
}

func canOpen(filepath string) bool {
	stat, err := os.Stat(filepath)
	return err == nil && stat.Mode().IsRegular()
}

func main() {
	defer func() {
		if s := recover(); s != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %s\n", s)
			os.Exit(1)
		}
	}()
	// parse command line arguments
	getopt.Parse()
	mainWithArgs(getopt.Args())
}

func mainWithArgs(args []string) {
	fatalIfFalse(len(args) == 1, "Usage: ./vanimport [options] <people.csv>")
	fatalIfFalse(canOpen(args[0]), "Cannot open people file")

	ctx := context.Background()
	levels := map[bool]log.Level{true: log.DebugLevel, false: log.InfoLevel}
	logger := &log.Logger{Level: levels[verbose], Handler: &logHandler{Writer: os.Stderr}}

	// create the API client
	client, err := everyaction.New(&everyaction.Config{
		AppName:  appName,
		APIKey:   apiKey,
		Endpoint: endpoint,
		Mode:     mode,
		Logger:   logger,
	})
	fatalOnError(err, "Cannot create the API client")

	// parse the people file, one person per row
	file, err := os.Open(args[0])
	fatalOnError(err, "Cannot open people file")
	people, err := parsePeopleCSV(file)
	file.Close()
	fatalOnError(err, "Cannot parse people file")
	logger.Infof("vanimport: loaded %d people from %s", len(people), args[0])

	// upsert everyone and print their VAN IDs
	imported, err := importAll(ctx, client, logger, people)
	fatalOnError(err, "Import interrupted")
	fmt.Println("Imported people: ", imported)
}

// parsePeopleCSV reads the people file. The first row names the
// columns; we recognize firstName, middleName, lastName, email and
// phone, case insensitively, and ignore everything else.
func parsePeopleCSV(r io.Reader) ([]everyaction.Args, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	// normalize column names so that "First Name", "first_name" and
	// "FirstName" all mean the same column
	normalize := strings.NewReplacer(" ", "", "_", "")
	columns := make(map[string]int)
	for idx, name := range header {
		columns[normalize.Replace(strings.ToLower(strings.TrimSpace(name)))] = idx
	}
	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}
	var people []everyaction.Args
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		person := everyaction.Args{}
		if value := field(record, "firstname"); value != "" {
			person["firstName"] = value
		}
		if value := field(record, "middlename"); value != "" {
			person["middleName"] = value
		}
		if value := field(record, "lastname"); value != "" {
			person["lastName"] = value
		}
		// the singular aliases wrap these into one-element lists
		if value := field(record, "email"); value != "" {
			person["email"] = value
		}
		if value := field(record, "phone"); value != "" {
			person["phone"] = value
		}
		if len(person) <= 0 {
			continue
		}
		people = append(people, person)
	}
	return people, nil
}

// importAll upserts every person and prints the resulting VAN IDs. A
// person that cannot be imported is logged and skipped; we only stop
// early when the context expires.
func importAll(ctx context.Context, client *everyaction.Client,
	logger everyaction.Logger, people []everyaction.Args) (int, error) {
	imported := 0
	for _, person := range people {
		if err := ctx.Err(); err != nil {
			return imported, err
		}
		record, err := client.People.FindOrCreate(ctx, person)
		if err != nil {
			logger.Warnf("vanimport: cannot import %v: %s", person, err.Error())
			continue
		}
		vanID, err := record.GetInt("vanId")
		if err != nil {
			logger.Warnf("vanimport: response carries no vanId: %s", err.Error())
			continue
		}
		fmt.Println(vanID)
		imported++
	}
	return imported, nil
}
