// Command mockvand is a daemon serving a fake EveryAction API.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/everyaction/everyaction-go/internal/mockvand"
	"github.com/everyaction/everyaction-go/internal/runtimex"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// shutdown calls srv.Shutdown with a reasonably long timeout. The srv.Shutdown
// function will immediately close any open listener and then will wait until
// all pending connections are closed or the context has expired. By giving pending
// connections a long timeout to complete, we make sure we can serve many of them
// while still eventually shutting down the server. This function will decrement
// the given wait group counter when it is done running.
func shutdown(srv *http.Server, wg *sync.WaitGroup) {
	defer wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}

func main() {
	cmd := &cobra.Command{
		Use:   "mockvand",
		Short: "Daemon serving a fake EveryAction API for local development",
	}

	flags := cmd.Flags()
	apiEndpoint := flags.String("endpoint", "127.0.0.1:8080", "API endpoint")
	apiKey := flags.String("api-key", "", "API key to require, including the mode suffix")
	appName := flags.String("app-name", "", "Application name to require")
	debug := flags.Bool("debug", false, "Toggle debug mode")
	prometheusEpnt := flags.String("prometheus", "127.0.0.1:9091", "Prometheus endpoint")

	runtimex.Try0(flags.Parse(os.Args[1:]))

	// set log level
	logmap := map[bool]log.Level{
		true:  log.DebugLevel,
		false: log.InfoLevel,
	}
	log.SetLevel(logmap[*debug])

	// create the handler and configure the credential check
	handler := mockvand.NewHandler(log.Log)
	handler.VAN.AppName = *appName
	handler.VAN.APIKey = *apiKey

	// create the HTTP server mux
	mux := http.NewServeMux()
	mux.Handle("/", handler)

	// create a listening server for serving API requests
	srv := &http.Server{Addr: *apiEndpoint, Handler: mux}
	listener, err := net.Listen("tcp", *apiEndpoint)
	runtimex.PanicOnError(err, "net.Listen failed")

	log.Infof("serving API requests at http://%s/", listener.Addr().String())

	// start listening in the background
	go srv.Serve(listener)

	// create another server for serving prometheus metrics
	promMux := http.NewServeMux()
	promMux.Handle("/metrics", promhttp.Handler())
	promSrv := &http.Server{Addr: *prometheusEpnt, Handler: promMux}
	go promSrv.ListenAndServe()

	log.Infof("serving prometheus metrics at http://%s/", *prometheusEpnt)

	// await for a signal
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.Infof("interrupted by signal: %v", sig)

	// shutdown the servers awaiting for connections being
	// served to terminate before exiting gracefully.
	log.Infof("waiting for pending requests to complete")
	shutdownWg := &sync.WaitGroup{}
	shutdownWg.Add(1)
	go shutdown(srv, shutdownWg)
	shutdownWg.Add(1)
	go shutdown(promSrv, shutdownWg)
	shutdownWg.Wait()
}
