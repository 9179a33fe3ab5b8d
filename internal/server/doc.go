// Package server runs the gateway's HTTP server.
//
// It owns the server lifecycle: startup, stop signals and a graceful
// shutdown bounded by the configured timeout.
package server
