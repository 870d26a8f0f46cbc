package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down.
	RunServer()

	// Run serves until ctx is done, then shuts down. It returns early with
	// an error if the listener cannot be opened or serving fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
