package main

import (
	"github.com/apex/log"
	"github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/app"
	_ "github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/changes"
	_ "github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/configure"
	_ "github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/lists"
	_ "github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/people"
	_ "github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/profile"
	_ "github.com/everyaction/everyaction-go/cmd/vancli/internal/cli/version"
)

func main() {
	if err := app.Run(); err != nil {
		log.WithError(err).Fatal("vancli exited with an error")
	}
}
