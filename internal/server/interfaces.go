package server

// Server defines the lifecycle contract of the gateway server.
//
// RunServer blocks until a stop signal arrives or serving fails, then shuts
// down within the configured timeout.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()
}
