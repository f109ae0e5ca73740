package nopanic

import (
	"context"
	"fmt"
	"sync"
)

// Group manages a set of goroutines that share a cancellation context.
// The first error returned by any goroutine cancels the group's context
// and is returned by Wait. Subsequent errors are discarded.
//
// A panic escaping a goroutine is never converted into an error: it is a
// violation. Debug builds report it with the group context and make Wait
// panic with the violation message; strict builds route the recover branch
// to the undefined symbol, so a linked strict binary cannot reach it.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	errOnce sync.Once
	err     error

	violOnce  sync.Once
	violated  bool
	violation string
}

// GroupWithContext returns a new Group and a derived context.Context.
// The derived context is canceled when the first goroutine in the Group
// returns a non-nil error or when Wait returns, whichever occurs first.
func GroupWithContext(ctx context.Context) (*Group, context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	return &Group{ctx: ctx, cancel: cancel}, ctx
}

// effectiveCtx returns the group's context, falling back to
// context.Background() for zero-value Groups not created via
// GroupWithContext.
func (grp *Group) effectiveCtx() context.Context {
	if grp.ctx != nil {
		return grp.ctx
	}

	return context.Background()
}

// Go starts a new goroutine in the Group. The first non-nil error returned
// by a goroutine is recorded and triggers cancellation of the group context.
// Callers must not mutate shared state without synchronization.
func (grp *Group) Go(fn func() error) {
	grp.wg.Add(1)

	go func() {
		defer grp.wg.Done()
		defer func() {
			if recovered := recover(); recovered != nil {
				grp.violate(recovered)
			}
		}()

		if err := fn(); err != nil {
			grp.errOnce.Do(func() {
				grp.err = err
				if grp.cancel != nil {
					grp.cancel()
				}
			})
		}
	}()
}

func (grp *Group) violate(recovered any) {
	if !Debug {
		trap(sourceGroup, "panic escaped group goroutine")
		return
	}

	msg := violationMessage(recovered)
	reportViolation(grp.effectiveCtx(), sourceGroup, msg)

	grp.violOnce.Do(func() {
		grp.violated = true
		grp.violation = msg

		if grp.cancel != nil {
			grp.cancel()
		}
	})
}

// violationMessage renders a recovered panic value as the message Wait will
// panic with. Violations raised by this package panic with a plain string,
// which passes through unchanged.
func violationMessage(recovered any) string {
	switch val := recovered.(type) {
	case string:
		return val
	case error:
		return val.Error()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Wait blocks until all goroutines in the Group have completed.
// It cancels the group context after all goroutines finish and returns
// the first non-nil error (if any) recorded by Go. If a goroutine
// violated, Wait panics with the first violation message instead of
// returning.
func (grp *Group) Wait() error {
	grp.wg.Wait()

	if grp.cancel != nil {
		grp.cancel()
	}

	if Debug && grp.violated {
		panic(grp.violation)
	}

	return grp.err
}
