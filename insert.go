package rbtree

import "github.com/pkg/errors"

// Insert links n into the tree at its ordered position. A record
// comparing equal to linked ones is placed after all of them, so equal
// keys iterate in insertion order. Inserting an already-linked node
// panics; a nil tree or node is a no-op.
func (tree *Tree[T]) Insert(n *Node[T]) {
	if tree == nil || n == nil {
		return
	}
	if n.state == NODE_LINKED {
		panic(errors.Wrap(ErrLinkedNode, "[Insert]"))
	}

	tree.updateCachesOnInsert(n)
	tree.attach(tree.root, n)
	tree.rebalanceOnInsert(n)
	tree.size++
}

// InsertAt links n like Insert but starts the descent at hint. The hint
// is valid when it compares strictly less than n and its successor, if
// any, does not: n then belongs in the gap right after hint and the
// placement skips the upper levels of the tree. An invalid or nil hint
// falls back to a full descent from the root, never an error.
func (tree *Tree[T]) InsertAt(hint, n *Node[T]) {
	if tree == nil || n == nil {
		return
	}
	if n.state == NODE_LINKED {
		panic(errors.Wrap(ErrLinkedNode, "[InsertAt]"))
	}

	start := tree.root
	if tree.validHint(hint, n) {
		start = hint
	}

	tree.updateCachesOnInsert(n)
	tree.attach(start, n)
	tree.rebalanceOnInsert(n)
	tree.size++
}

// validHint reports whether n belongs in the gap immediately after hint.
func (tree *Tree[T]) validHint(hint, n *Node[T]) bool {
	if !hint.Linked() {
		return false
	}
	if hint.item.Compare(n.item) >= 0 {
		return false
	}

	succ := hint.Next()
	return succ == nil || succ.item.Compare(n.item) >= 0
}

// attach descends from start and links n as a red leaf at the first
// absent slot. Ties descend right, which is what keeps equal keys in
// insertion order.
func (tree *Tree[T]) attach(start, n *Node[T]) {
	n.color = NODE_RED
	n.state = NODE_LINKED

	if tree.root == nil {
		tree.root = n
		return
	}

	cur := start
	for {
		if n.item.Compare(cur.item) < 0 {
			if cur.left == nil {
				cur.left = n
				n.parent = cur
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				n.parent = cur
				return
			}
			cur = cur.right
		}
	}
}

// updateCachesOnInsert runs before the descent. The first node seeds the
// enabled caches; afterwards a new node displaces a cache when it compares
// less-or-equal (min) or greater-or-equal (max), so among equal keys the
// most recent insert is the one cached, consistent with tie placement.
func (tree *Tree[T]) updateCachesOnInsert(n *Node[T]) {
	if tree.root == nil {
		if tree.opts.CacheMin {
			tree.min = n
		}
		if tree.opts.CacheMax {
			tree.max = n
		}
		return
	}

	if tree.opts.CacheMin && n.item.Compare(tree.min.item) <= 0 {
		tree.min = n
	}
	if tree.opts.CacheMax && n.item.Compare(tree.max.item) >= 0 {
		tree.max = n
	}
}

// rebalanceOnInsert restores the color invariants walking up from the
// freshly attached red leaf, then re-derives the root.
//
// The loop invariant is that cur is red and the only possible violation
// sits between cur and its parent. A red uncle is handled by recoloring
// and climbing two levels; a black uncle ends the loop with one or two
// rotations keyed by the (parent side, node side) shape.
func (tree *Tree[T]) rebalanceOnInsert(n *Node[T]) {
	cur := n
	for {
		parent := cur.parent
		if parent == nil {
			cur.color = NODE_BLACK
			break
		}
		if cur.color == NODE_BLACK || parent.color == NODE_BLACK {
			break
		}

		grandparent := parent.parent
		uncle := parent.sibling()
		if uncle.isRed() {
			parent.color = NODE_BLACK
			uncle.color = NODE_BLACK
			grandparent.color = NODE_RED
			cur = grandparent
			continue
		}

		if parent == grandparent.left {
			if cur == parent.right {
				// LR: demote parent first, then treat as LL.
				parent.rotateLeft()
				parent = cur
			}
			grandparent.rotateRight()
		} else {
			if cur == parent.left {
				// RL: mirror of LR.
				parent.rotateRight()
				parent = cur
			}
			grandparent.rotateLeft()
		}
		parent.swapColors(grandparent)
		break
	}

	tree.rederiveRoot(n)
}
