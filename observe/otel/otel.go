package otel

import (
	"github.com/NetPo4ki/go-ctxtree/ctxtree"
)

// Nop is a no-op implementation of the ctxtree.Observer interface.
// It serves as a placeholder for an OpenTelemetry-backed observer without adding dependencies.
type Nop struct{}

var _ ctxtree.Observer = (*Nop)(nil)

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) NodeCreated(ctxtree.Context)         {}
func (*Nop) ChildAttached(_, _ ctxtree.Context)  {}
func (*Nop) NodeCanceled(ctxtree.Context, error) {}
