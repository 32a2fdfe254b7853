package testingx

import (
	"net"
	"net/http"
	"net/http/httptest"

	"github.com/everyaction/everyaction-go/internal/runtimex"
)

// MustNewHTTPServer creates a started [httptest.Server] on a random
// 127.0.0.1 port using the given handler. This function panics when
// it cannot listen. Only use for testing purposes!
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	listener := runtimex.Try1(net.Listen("tcp", "127.0.0.1:0"))
	srv := &httptest.Server{
		Config:   &http.Server{Handler: handler},
		Listener: listener,
	}
	srv.Start()
	return srv
}
