package ctxtree

import (
	"errors"
	"time"
)

// ErrCanceled is the cause recorded when a node is canceled through
// its CancelFunc.
var ErrCanceled = errors.New("canceled")

// ErrNoValue is returned by Value when neither the node nor any of
// its ancestors holds the requested key.
var ErrNoValue = errors.New("no value for key")

// Context is the read side of a tree node: cancellation status and
// value lookup. The only implementations are the root returned by
// Background and the CancelCtx nodes derived with WithCancel.
type Context interface {
	// Err returns nil while the node is live and the recorded
	// cancellation cause afterwards. Once non-nil it never changes.
	Err() error

	// Done returns a channel that is closed when the node is
	// canceled. All receivers are released together, and receivers
	// arriving after cancellation do not block. Callers should
	// re-read the cause via Err after the channel closes. The root's
	// channel is nil and blocks forever.
	Done() <-chan struct{}

	// Value looks key up on this node and then on each ancestor in
	// turn; the root terminates the walk with ErrNoValue. No node
	// kind in this package stores values, so the walk always ends at
	// the root.
	Value(key any) (any, error)

	// Deadline is not implemented by any node in this package and
	// panics when called.
	Deadline() (deadline time.Time, ok bool)
}

// Canceler is the write side of a tree node. A parent holds each of
// its children as a Canceler so a cascade can reach every child kind
// uniformly.
type Canceler interface {
	// Cancel records cause on the node (first cancel wins) and
	// cascades Cancel(false, cause) into every registered child
	// before waking the node's waiters. removeFromParent is accepted
	// for a future child-list pruning policy and currently ignored.
	Cancel(removeFromParent bool, cause error)

	Done() <-chan struct{}
}

// CancelFunc cancels the node it was returned with, recording
// ErrCanceled. It is the only capability handed out by WithCancel
// beyond the node itself: holders can trigger cancellation but get no
// wider access to the tree.
type CancelFunc func()
