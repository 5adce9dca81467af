// Package rbtree implements an embeddable, order-preserving red-black
// tree over caller-owned records. Records embed a Node and implement the
// Item capability; the tree maintains only the link structure between
// them. Insert, delete, exact search and min/max access are O(log n),
// iteration steps are amortized O(1), and trees can additionally keep the
// minimum and/or maximum node cached for O(1) extremum access.
//
// The tree performs no locking. Read-only operations may run concurrently
// with each other, but any mutation requires exclusive access supplied by
// the embedding layer.
package rbtree

// New returns an empty tree configured by opts. If nil options are
// provided, DefaultOptions will be used. The zero value of Tree is also
// ready to use and behaves like New(nil).
func New[T Item[T]](opts *Options) *Tree[T] {
	if opts == nil {
		opts = &DefaultOptions
	}

	return &Tree[T]{opts: *opts}
}

// Tree indexes caller-owned records through their embedded nodes. It
// allocates and frees nothing: linking and unlinking only rewires the
// nodes the caller hands in.
type Tree[T Item[T]] struct {
	root *Node[T]
	min  *Node[T] // maintained only when opts.CacheMin is set
	max  *Node[T] // maintained only when opts.CacheMax is set
	size int
	opts Options
}

// Find returns a node whose record compares equal to key, nil if no such
// node is linked. The probe record only needs enough state for Compare; it
// is never linked or modified. When equal keys repeat, the node returned
// is the one encountered first on the descent, not necessarily the oldest
// insert.
func (tree *Tree[T]) Find(key T) *Node[T] {
	if tree == nil {
		return nil
	}

	cur := tree.root
	for cur != nil {
		c := key.Compare(cur.item)
		if c == 0 {
			return cur
		} else if c < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return nil
}

// First returns the smallest linked node, nil when the tree is empty.
func (tree *Tree[T]) First() *Node[T] {
	if tree == nil || tree.root == nil {
		return nil
	}
	return tree.root.leftmost()
}

// Last returns the largest linked node, nil when the tree is empty.
func (tree *Tree[T]) Last() *Node[T] {
	if tree == nil || tree.root == nil {
		return nil
	}
	return tree.root.rightmost()
}

// Min returns the current minimum, nil when the tree is empty. With
// CacheMin set this is O(1), otherwise it descends like First.
func (tree *Tree[T]) Min() *Node[T] {
	if tree == nil {
		return nil
	}
	if tree.opts.CacheMin {
		return tree.min
	}
	return tree.First()
}

// Max returns the current maximum, nil when the tree is empty. With
// CacheMax set this is O(1), otherwise it descends like Last.
func (tree *Tree[T]) Max() *Node[T] {
	if tree == nil {
		return nil
	}
	if tree.opts.CacheMax {
		return tree.max
	}
	return tree.Last()
}

// Size returns the number of linked nodes.
func (tree *Tree[T]) Size() int {
	if tree == nil {
		return 0
	}
	return tree.size
}

// IsEmpty reports whether the tree holds no nodes.
func (tree *Tree[T]) IsEmpty() bool {
	return tree.Size() == 0
}

// Clear unlinks every node and resets the tree to empty. Unlike dropping
// the tree handle, this leaves every record observably unlinked and
// immediately reusable. O(n).
func (tree *Tree[T]) Clear() {
	if tree == nil {
		return
	}

	tree.drop(tree.root)
	tree.root = nil
	tree.min = nil
	tree.max = nil
	tree.size = 0
}

func (tree *Tree[T]) drop(n *Node[T]) {
	if n == nil {
		return
	}

	tree.drop(n.left)
	tree.drop(n.right)
	n.clear()
}

// rederiveRoot walks parent links up from n and stores the parentless end
// of the walk as root. Rotations are node-local and may have promoted a
// new node above the stored root; every mutation finishes through here.
func (tree *Tree[T]) rederiveRoot(n *Node[T]) {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	tree.root = cur
}
