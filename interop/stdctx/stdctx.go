// Package stdctx bridges ctxtree nodes and the standard library's
// context.Context so trees can be handed to code that expects the
// stdlib interface, and canceled by code that only has one.
package stdctx

import (
	"context"
	"sync"
	"time"

	"github.com/NetPo4ki/go-ctxtree/ctxtree"
)

// wrapped just swizzles the method set.
type wrapped struct {
	n ctxtree.Context
}

var _ context.Context = wrapped{}

// Wrap presents n as a standard context.Context. The view reports no
// deadline rather than panicking, since stdlib callers probe Deadline
// freely. Value lookups that end in ctxtree.ErrNoValue surface as the
// stdlib's nil.
func Wrap(n ctxtree.Context) context.Context { return wrapped{n: n} }

func (w wrapped) Deadline() (time.Time, bool) { return time.Time{}, false }

func (w wrapped) Done() <-chan struct{} { return w.n.Done() }

func (w wrapped) Err() error { return w.n.Err() }

func (w wrapped) Value(key any) any {
	v, err := w.n.Value(key)
	if err != nil {
		return nil
	}
	return v
}

// Link fires cancel once parent is done, so a tree node tracks the
// lifetime of a standard context. The returned stop function detaches
// the watcher without canceling; it is safe to call more than once.
func Link(parent context.Context, cancel ctxtree.CancelFunc) (stop func()) {
	done := parent.Done()
	if done == nil {
		// Background-like context, never done; nothing to watch.
		return func() {}
	}
	quit := make(chan struct{})
	go func() {
		select {
		case <-done:
			cancel()
		case <-quit:
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(quit) }) }
}
