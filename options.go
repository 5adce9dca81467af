package rbtree

// Options represents the configuration options for a tree.
type Options struct {
	// CacheMin keeps a reference to the smallest linked node current
	// across every mutation, making Min an O(1) call.
	CacheMin bool

	// CacheMax keeps a reference to the largest linked node current
	// across every mutation, making Max an O(1) call.
	CacheMax bool
}

// DefaultOptions to be used by New().
var DefaultOptions = Options{
	CacheMin: false,
	CacheMax: false,
}
