// Package ctxtree implements a hierarchical cancellation tree.
// Nodes are derived from a parent, canceling any node cancels all of
// its descendants, and any number of goroutines can wait for a node's
// cancellation through its broadcast done channel.
package ctxtree
