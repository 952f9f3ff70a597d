package ctxtree

import (
	"sync"
	"time"
)

// Observer receives node lifecycle notifications. All methods may be
// called concurrently; implementations must be safe for that. Hooks
// run outside node locks.
type Observer interface {
	NodeCreated(ctx Context)
	ChildAttached(parent, child Context)
	NodeCanceled(ctx Context, cause error)
}

type Option func(*Options)

type Options struct {
	Observer Observer
}

func defaultOptions() Options { return Options{} }

func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// parentNode is the attachment contract shared by the two node kinds.
// Keeping it unexported keeps the variant set closed: every tree is
// built from exactly one root plus CancelCtx nodes, so traversal and
// registration never meet a foreign Context implementation.
type parentNode interface {
	Context
	attach(child Canceler)
	options() Options
}

// CancelCtx is a cancelable node in the tree. It implements both
// Context and Canceler; the zero value is not usable, derive nodes
// with WithCancel.
type CancelCtx struct {
	mu       sync.Mutex
	children []Canceler
	par      Context
	cause    error
	canceled bool
	done     chan struct{}

	opts Options
	obs  Observer
}

var (
	_ Context    = (*CancelCtx)(nil)
	_ Canceler   = (*CancelCtx)(nil)
	_ parentNode = (*CancelCtx)(nil)
)

// WithCancel derives a cancelable child of parent and returns it
// together with a CancelFunc that cancels it with ErrCanceled. The
// child is registered in parent's child list before WithCancel
// returns, so a later cancellation of parent is guaranteed to reach
// it. Options default to the parent's own, mirroring how observers
// are usually attached once at the root.
//
// parent must be a node from this package; anything else panics.
func WithCancel(parent Context, optFns ...Option) (*CancelCtx, CancelFunc) {
	p, ok := parent.(parentNode)
	if !ok {
		panic("ctxtree: parent is not a tree node")
	}
	opts := p.options()
	for _, fn := range optFns {
		fn(&opts)
	}
	c := &CancelCtx{
		par:  parent,
		done: make(chan struct{}),
		opts: opts,
		obs:  opts.Observer,
	}
	p.attach(c)
	if c.obs != nil {
		c.obs.NodeCreated(c)
		c.obs.ChildAttached(parent, c)
	}
	if err := parent.Err(); err != nil {
		// The parent was canceled before or during registration, so
		// its cascade may have missed the new child.
		c.Cancel(false, err)
	}
	return c, func() { c.Cancel(true, ErrCanceled) }
}

func (c *CancelCtx) attach(child Canceler) {
	c.mu.Lock()
	c.children = append(c.children, child)
	c.mu.Unlock()
}

func (c *CancelCtx) options() Options { return c.opts }

// Err reports the recorded cancellation cause, nil while live.
func (c *CancelCtx) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cause
}

// Done returns the node's broadcast channel.
func (c *CancelCtx) Done() <-chan struct{} { return c.done }

// Value delegates to the parent; CancelCtx nodes store no values.
func (c *CancelCtx) Value(key any) (any, error) {
	c.mu.Lock()
	p := c.par
	c.mu.Unlock()
	if p == nil {
		panic("ctxtree: node has no parent")
	}
	return p.Value(key)
}

// Deadline is not supported by CancelCtx.
func (c *CancelCtx) Deadline() (time.Time, bool) {
	panic("ctxtree: Deadline is not implemented")
}

// Cancel marks the node canceled and cascades to its children. The
// first cancel records cause (nil is normalized to ErrCanceled) and
// closes the done channel; later calls re-run the cascade with the
// already-recorded cause, which makes Cancel safe to call repeatedly
// or concurrently. removeFromParent is currently a no-op: child lists
// are append-only, a known limitation for long-lived trees with many
// short-lived children.
func (c *CancelCtx) Cancel(removeFromParent bool, cause error) {
	_ = removeFromParent
	if cause == nil {
		cause = ErrCanceled
	}

	c.mu.Lock()
	wasCanceled := c.canceled
	c.canceled = true
	if c.cause == nil {
		c.cause = cause
	}
	recorded := c.cause
	kids := make([]Canceler, len(c.children))
	copy(kids, c.children)
	c.mu.Unlock()

	// Children receive the cause this node recorded, unchanged, and
	// each one locks only its own state. The cascade therefore never
	// holds two node locks at once and completes before Cancel
	// returns.
	for _, child := range kids {
		child.Cancel(false, recorded)
	}

	if !wasCanceled {
		close(c.done)
		if c.obs != nil {
			c.obs.NodeCanceled(c, recorded)
		}
	}
}

// root is the top of every tree: no parent, never canceled, no
// values. It deliberately does not implement Canceler.
type root struct {
	mu       sync.Mutex
	children []Canceler
	opts     Options
}

var _ parentNode = (*root)(nil)

// Background returns a fresh root node. Options set here are
// inherited by every node derived below it.
func Background(optFns ...Option) Context {
	r := &root{opts: defaultOptions()}
	for _, fn := range optFns {
		fn(&r.opts)
	}
	if r.opts.Observer != nil {
		r.opts.Observer.NodeCreated(r)
	}
	return r
}

func (r *root) attach(child Canceler) {
	r.mu.Lock()
	r.children = append(r.children, child)
	r.mu.Unlock()
}

func (r *root) options() Options { return r.opts }

func (r *root) Err() error { return nil }

// Done returns nil; receiving from a nil channel blocks forever,
// which is exactly the contract for a node that can never be
// canceled.
func (r *root) Done() <-chan struct{} { return nil }

func (r *root) Value(key any) (any, error) { return nil, ErrNoValue }

func (r *root) Deadline() (time.Time, bool) {
	panic("ctxtree: Deadline is not implemented")
}
