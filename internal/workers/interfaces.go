// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate, and the mail
// dispatcher that delivers activation codes outside the request path.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to return after spawning their goroutines;
// long-running work happens off the caller's goroutine.
type Worker interface {
	Run()
}
