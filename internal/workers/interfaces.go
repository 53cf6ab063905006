// Package workers provides background workers of the terminal client and a
// Workers aggregate that runs them together.
package workers

import "context"

// Worker is a background job bound to a context.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
