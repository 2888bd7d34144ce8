package server

// Server is the lifecycle contract for the application's transport layer.
type Server interface {
	// RunServer starts the server and blocks until shutdown completes.
	RunServer()

	// Shutdown stops the server gracefully.
	Shutdown()
}
