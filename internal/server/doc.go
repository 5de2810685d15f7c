// Package server runs the HTTP transport of the calorie keeper API.
//
// It owns the listener lifecycle: startup, waiting for a termination signal
// (SIGTERM, SIGINT, SIGQUIT) and graceful shutdown that lets in-flight
// requests finish.
package server
