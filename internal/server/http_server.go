package server

import (
	"context"
	"net/http"
)

// httpServer abstracts the parts of *http.Server this package touches.
// The API and metrics listeners both hide behind it, and tests substitute
// stubs.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// newAPIServer builds the public listener with the service timeouts.
func newAPIServer(port string, handler http.Handler) httpServer {
	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

// newMetricsServer builds the scrape listener, without the API timeouts.
func newMetricsServer(port string, handler http.Handler) httpServer {
	return netHTTPServer{srv: &http.Server{Addr: ":" + port, Handler: handler}}
}

type netHTTPServer struct {
	srv *http.Server
}

func (s netHTTPServer) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s netHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s netHTTPServer) Addr() string                       { return s.srv.Addr }
func (s netHTTPServer) Handler() http.Handler              { return s.srv.Handler }
