package rbtree

import "github.com/pkg/errors"

// Delete unlinks the first node found whose record compares equal to key.
// It returns the node that physically left the tree and an iterator
// positioned after the deleted value; a miss returns nil, nil.
//
// The removed node is the storage the caller may reclaim. Under
// substitute deletion it is not the node that matched the key: when the
// matched node has two children its record receives the successor's
// payload via Assign and the successor's node is the one unlinked.
func (tree *Tree[T]) Delete(key T) (removed, next *Node[T]) {
	if tree == nil {
		return nil, nil
	}

	target := tree.Find(key)
	if target == nil {
		return nil, nil
	}

	return tree.DeleteAt(target)
}

// DeleteAt unlinks the value held by n, which must be linked: deleting an
// unlinked node panics, indicating double deletion or a node the tree
// never held. Results are as for Delete. A nil tree or node is a no-op.
func (tree *Tree[T]) DeleteAt(n *Node[T]) (removed, next *Node[T]) {
	if tree == nil || n == nil {
		return nil, nil
	}
	if n.state != NODE_LINKED {
		panic(errors.Wrap(ErrUnlinkedNode, "[DeleteAt]"))
	}

	succ := n.Next()
	tree.updateCachesBeforeDelete(n)

	victim := n.substitute()
	if victim != n {
		n.item.Assign(victim.item)
	}
	tree.unlink(victim)

	tree.updateCachesAfterDelete(n, victim)
	tree.size--

	// The iterator resumes at the deleted value's successor. When the
	// successor itself served as the victim its payload now lives in n,
	// so n is the resume point.
	if victim == succ {
		next = n
	} else {
		next = succ
	}
	return victim, next
}

// substitute picks the node that will physically leave the tree in place
// of n: the in-order successor when n has two children, the lone child
// when it has one, n itself when it is a leaf.
func (n *Node[T]) substitute() *Node[T] {
	switch {
	case n.left != nil && n.right != nil:
		return n.right.leftmost()
	case n.left != nil:
		return n.left
	case n.right != nil:
		return n.right
	default:
		return n
	}
}

// unlink physically removes victim, which has at most one child by
// construction. A lone child is always a red leaf under the invariants:
// splicing it into victim's place recolored black absorbs the removal
// with no climbing. A childless victim is rebalanced first, while still
// linked, then detached.
func (tree *Tree[T]) unlink(victim *Node[T]) {
	child := victim.left
	if child == nil {
		child = victim.right
	}

	if child != nil {
		tree.transplant(victim, child)
		child.color = NODE_BLACK
		tree.rederiveRoot(child)
	} else {
		tree.rebalanceBeforeUnlink(victim)

		parent := victim.parent
		tree.transplant(victim, nil)
		if parent != nil {
			tree.rederiveRoot(parent)
		} else {
			tree.root = nil
		}
	}

	victim.clear()
}

// transplant replaces victim with repl, possibly nil, in victim's parent
// slot. Root bookkeeping stays with the caller.
func (tree *Tree[T]) transplant(victim, repl *Node[T]) {
	if victim.parent == nil {
		if repl != nil {
			repl.parent = nil
		}
		return
	}
	victim.parent.replaceChild(victim, repl)
}

// rebalanceBeforeUnlink compensates the coming removal of a childless
// node, climbing ancestors while the node is still linked.
//
// The loop invariant is that the subtree under cur is one black short
// once the removal lands. A red cur absorbs the deficit by recoloring; a
// red sibling is first rotated away to expose a black one; a black
// sibling with black nephews pushes the deficit up; otherwise a red
// nephew is rotated to the far side if needed and the terminal rotation
// rebalances in O(1).
func (tree *Tree[T]) rebalanceBeforeUnlink(node *Node[T]) {
	cur := node
	for {
		parent := cur.parent
		if parent == nil {
			cur.color = NODE_BLACK
			return
		}
		if cur.color == NODE_RED {
			cur.color = NODE_BLACK
			return
		}

		sib := cur.sibling()
		if sib.isRed() {
			sib.color = NODE_BLACK
			parent.color = NODE_RED
			if cur == parent.left {
				parent.rotateLeft()
			} else {
				parent.rotateRight()
			}
			sib = cur.sibling()
		}

		if sib.left.isBlack() && sib.right.isBlack() {
			sib.color = NODE_RED
			cur = parent
			continue
		}

		if cur == parent.left {
			if sib.right.isBlack() {
				// Red nephew sits near: move it to the far side.
				sib.left.color = NODE_BLACK
				sib.color = NODE_RED
				sib.rotateRight()
				sib = cur.sibling()
			}
			sib.color = parent.color
			parent.color = NODE_BLACK
			sib.right.color = NODE_BLACK
			parent.rotateLeft()
		} else {
			if sib.left.isBlack() {
				sib.right.color = NODE_BLACK
				sib.color = NODE_RED
				sib.rotateLeft()
				sib = cur.sibling()
			}
			sib.color = parent.color
			parent.color = NODE_BLACK
			sib.left.color = NODE_BLACK
			parent.rotateRight()
		}
		return
	}
}

// updateCachesBeforeDelete slides a cache off the node about to lose its
// value, against the still-unmodified tree.
func (tree *Tree[T]) updateCachesBeforeDelete(n *Node[T]) {
	if tree.opts.CacheMin && n == tree.min {
		tree.min = n.Next()
	}
	if tree.opts.CacheMax && n == tree.max {
		tree.max = n.Prev()
	}
}

// updateCachesAfterDelete repairs a cache left pointing at the removed
// victim. That happens when the extremum node itself served as the
// substitute: its payload migrated onto target, so the cache follows it
// there. An emptied tree drops both caches.
func (tree *Tree[T]) updateCachesAfterDelete(target, victim *Node[T]) {
	if tree.root == nil {
		tree.min = nil
		tree.max = nil
		return
	}

	if tree.opts.CacheMin && tree.min == victim {
		tree.min = target
	}
	if tree.opts.CacheMax && tree.max == victim {
		tree.max = target
	}
}
