package pool

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// Task is one unit of work executed by Run
type Task func(ctx context.Context) error

// Run executes tasks with at most limit running concurrently and waits for
// all of them to finish.
//
// Behavior:
//   - A panicking task is recovered, logged, and converted into an error
//     instead of tearing down its siblings
//   - A failing task does not cancel the others; every task sees only the
//     caller's context
//   - Returns the first non-nil task error after all tasks finished
func Run(ctx context.Context, limit int, tasks []Task) error {
	g := &errgroup.Group{}
	g.SetLimit(limit)

	for _, task := range tasks {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger := ctxlog.From(ctx)
					logger.Error("panic in pooled task",
						"recover", r,
						"stack", string(debug.Stack()))
					err = goerr.New("panic in pooled task", goerr.V("recover", r))
				}
			}()

			return task(ctx)
		})
	}

	return g.Wait()
}
