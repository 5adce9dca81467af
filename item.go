package rbtree

import "golang.org/x/exp/constraints"

// Item is the capability a record type must provide to live in a tree.
// Compare defines a strict weak ordering over records and must not change
// while the record is linked. Assign transfers the payload of src onto the
// receiver's storage; the tree calls it only when a deletion removes
// through a substitute node. The embedded Node is not payload and must not
// be touched by Assign.
type Item[T any] interface {
	Compare(other T) int
	Assign(src T)
}

// Ordered is a ready-made record for trees whose entries carry nothing but
// a single ordered key. Construct it with NewOrdered so the embedded node
// is bound.
type Ordered[K constraints.Ordered] struct {
	Key  K
	node Node[*Ordered[K]]
}

// NewOrdered returns an Ordered record with its node initialized and
// unlinked, ready for insertion.
func NewOrdered[K constraints.Ordered](key K) *Ordered[K] {
	o := &Ordered[K]{Key: key}
	o.node.Init(o)
	return o
}

func (o *Ordered[K]) Compare(other *Ordered[K]) int {
	if o.Key < other.Key {
		return -1
	} else if o.Key > other.Key {
		return 1
	}
	return 0
}

func (o *Ordered[K]) Assign(src *Ordered[K]) {
	o.Key = src.Key
}

// Node returns the embedded link node, the handle passed to tree
// operations.
func (o *Ordered[K]) Node() *Node[*Ordered[K]] {
	return &o.node
}
