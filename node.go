package rbtree

type color byte

const (
	NODE_RED color = iota
	NODE_BLACK
)

type state byte

const (
	NODE_UNLINKED state = iota
	NODE_LINKED
)

// Node is the ordering link embedded in a caller-owned record. The tree
// owns only the link fields; record memory and lifetime stay with the
// caller. A node is either linked into exactly one tree or unlinked; the
// zero value is unlinked and must be bound to its record via Init before
// the first insertion.
type Node[T Item[T]] struct {
	item   T
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]
	color  color
	state  state
}

// Init binds the node to the record embedding it and resets it to the
// unlinked state. Calling Init on a node that is still linked corrupts the
// tree holding it; delete it first.
func (n *Node[T]) Init(item T) {
	n.item = item
	n.parent = nil
	n.left = nil
	n.right = nil
	n.color = NODE_RED
	n.state = NODE_UNLINKED
}

// Item returns the record the node is bound to.
func (n *Node[T]) Item() T {
	return n.item
}

// Linked reports whether the node is currently part of a tree.
func (n *Node[T]) Linked() bool {
	return n != nil && n.state == NODE_LINKED
}

// Next returns the in-order successor: the leftmost node of the right
// subtree when one exists, otherwise the first ancestor reached from the
// left side. Returns nil at the end of the sequence and for unlinked
// nodes.
func (n *Node[T]) Next() *Node[T] {
	if !n.Linked() {
		return nil
	}

	if n.right != nil {
		return n.right.leftmost()
	}

	cur := n
	for cur.parent != nil && cur == cur.parent.right {
		cur = cur.parent
	}
	return cur.parent
}

// Prev returns the in-order predecessor, mirroring Next. Returns nil at
// the start of the sequence and for unlinked nodes.
func (n *Node[T]) Prev() *Node[T] {
	if !n.Linked() {
		return nil
	}

	if n.left != nil {
		return n.left.rightmost()
	}

	cur := n
	for cur.parent != nil && cur == cur.parent.left {
		cur = cur.parent
	}
	return cur.parent
}

func (n *Node[T]) leftmost() *Node[T] {
	cur := n
	for cur.left != nil {
		cur = cur.left
	}
	return cur
}

func (n *Node[T]) rightmost() *Node[T] {
	cur := n
	for cur.right != nil {
		cur = cur.right
	}
	return cur
}

// isRed treats absent children as black, which keeps the rebalancing case
// analysis free of nil checks.
func (n *Node[T]) isRed() bool {
	return n != nil && n.color == NODE_RED
}

func (n *Node[T]) isBlack() bool {
	return !n.isRed()
}

// sibling returns the parent's other child, nil for the root.
func (n *Node[T]) sibling() *Node[T] {
	if n.parent == nil {
		return nil
	}
	if n == n.parent.left {
		return n.parent.right
	}
	return n.parent.left
}

// replaceChild swaps the receiver's reference to the old child with repl,
// which may be nil. repl is reparented when present.
func (n *Node[T]) replaceChild(old, repl *Node[T]) {
	if n.left == old {
		n.left = repl
	} else if n.right == old {
		n.right = repl
	}
	if repl != nil {
		repl.parent = n
	}
}

// rotateLeft promotes n's right child into n's position, keeping the
// in-order sequence intact. Rotations are node-local: the tree's root
// reference is not consulted, callers re-derive it by walking up once
// their rebalance loop is done.
func (n *Node[T]) rotateLeft() {
	pivot := n.right
	if pivot == nil {
		return
	}

	n.right = pivot.left
	if pivot.left != nil {
		pivot.left.parent = n
	}

	pivot.parent = n.parent
	if n.parent != nil {
		n.parent.replaceChild(n, pivot)
	}

	pivot.left = n
	n.parent = pivot
}

// rotateRight mirrors rotateLeft, promoting the left child.
func (n *Node[T]) rotateRight() {
	pivot := n.left
	if pivot == nil {
		return
	}

	n.left = pivot.right
	if pivot.right != nil {
		pivot.right.parent = n
	}

	pivot.parent = n.parent
	if n.parent != nil {
		n.parent.replaceChild(n, pivot)
	}

	pivot.right = n
	n.parent = pivot
}

// swapColors exchanges colors only, links are untouched.
func (n *Node[T]) swapColors(other *Node[T]) {
	n.color, other.color = other.color, n.color
}

// clear resets the link fields after removal from a tree. The item
// binding is kept so the record can be re-inserted without another Init.
func (n *Node[T]) clear() {
	n.parent = nil
	n.left = nil
	n.right = nil
	n.color = NODE_RED
	n.state = NODE_UNLINKED
}
