package rbtree

import "github.com/pkg/errors"

// Validate checks the structural invariants: a non-decreasing in-order
// sequence, color rules, uniform black-height, parent back-links,
// state tags, the size counter and cache agreement. The first violation
// found is returned as a descriptive error, nil when the tree is
// consistent. The walk is O(n); meant for tests and debugging.
func (tree *Tree[T]) Validate() error {
	if tree == nil {
		return nil
	}

	if tree.root == nil {
		if tree.size != 0 {
			return errors.Errorf("empty tree reports size %d", tree.size)
		}
		if tree.min != nil || tree.max != nil {
			return errors.New("empty tree holds extremum caches")
		}
		return nil
	}

	if tree.root.parent != nil {
		return errors.New("root has a parent")
	}
	if tree.root.color != NODE_BLACK {
		return errors.New("root is not black")
	}

	count := 0
	if err := tree.check(tree.root, nil, nil, &count); err != nil {
		return err
	}
	if count != tree.size {
		return errors.Errorf("size counter is %d, found %d linked nodes", tree.size, count)
	}

	if _, err := tree.blackHeight(tree.root); err != nil {
		return err
	}

	// Caches are compared by value, not identity: among equal keys the
	// cache holds the most recently inserted one, which for the minimum
	// is not the leftmost node.
	if tree.opts.CacheMin {
		if !tree.min.Linked() || tree.min.item.Compare(tree.First().item) != 0 {
			return errors.New("cached min does not hold the minimum")
		}
	}
	if tree.opts.CacheMax {
		if !tree.max.Linked() || tree.max.item.Compare(tree.Last().item) != 0 {
			return errors.New("cached max does not hold the maximum")
		}
	}

	return nil
}

// check walks the subtree verifying per-node invariants. lo and hi bound
// the records allowed under n, inclusive on both sides: ties descend
// right at attach time, but rotations can later lift an equal key above
// an earlier one, so equal keys may sit on either flank of an ancestor.
// The enforced ordering invariant is a non-decreasing in-order sequence.
func (tree *Tree[T]) check(n, lo, hi *Node[T], count *int) error {
	if n == nil {
		return nil
	}

	if n.state != NODE_LINKED {
		return errors.Errorf("reachable node %v is not marked linked", n.item)
	}
	if lo != nil && n.item.Compare(lo.item) < 0 {
		return errors.Errorf("node %v sorted before %v", n.item, lo.item)
	}
	if hi != nil && n.item.Compare(hi.item) > 0 {
		return errors.Errorf("node %v sorted after %v", n.item, hi.item)
	}
	if n.isRed() && (n.left.isRed() || n.right.isRed()) {
		return errors.Errorf("red node %v has a red child", n.item)
	}
	if n.left != nil && n.left.parent != n {
		return errors.Errorf("left child of %v has a wrong parent link", n.item)
	}
	if n.right != nil && n.right.parent != n {
		return errors.Errorf("right child of %v has a wrong parent link", n.item)
	}

	*count++
	if err := tree.check(n.left, lo, n, count); err != nil {
		return err
	}
	return tree.check(n.right, n, hi, count)
}

// blackHeight returns the black count down to absent children, erroring
// out when two paths disagree.
func (tree *Tree[T]) blackHeight(n *Node[T]) (int, error) {
	if n == nil {
		return 1, nil
	}

	lh, err := tree.blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := tree.blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.Errorf("black-height mismatch under %v: %d vs %d", n.item, lh, rh)
	}

	if n.color == NODE_BLACK {
		lh++
	}
	return lh, nil
}
