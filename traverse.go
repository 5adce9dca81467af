package rbtree

// InOrder visits every node in ascending order. The walk stops early when
// visit returns false. Recursion depth is bounded by the tree height,
// O(log n) under the balance invariant.
func (tree *Tree[T]) InOrder(visit func(n *Node[T]) bool) {
	if tree == nil || visit == nil {
		return
	}
	tree.inorder(tree.root, visit)
}

// PreOrder visits every node parent-first, left subtree before right.
// The walk stops early when visit returns false.
func (tree *Tree[T]) PreOrder(visit func(n *Node[T]) bool) {
	if tree == nil || visit == nil {
		return
	}
	tree.preorder(tree.root, visit)
}

// PostOrder visits every node children-first, left subtree before right.
// The walk stops early when visit returns false. Deleting the visited
// node's record is safe here only after the walk returns.
func (tree *Tree[T]) PostOrder(visit func(n *Node[T]) bool) {
	if tree == nil || visit == nil {
		return
	}
	tree.postorder(tree.root, visit)
}

func (tree *Tree[T]) inorder(n *Node[T], visit func(n *Node[T]) bool) bool {
	if n == nil {
		return true
	}

	if !tree.inorder(n.left, visit) {
		return false
	}
	if !visit(n) {
		return false
	}
	return tree.inorder(n.right, visit)
}

func (tree *Tree[T]) preorder(n *Node[T], visit func(n *Node[T]) bool) bool {
	if n == nil {
		return true
	}

	if !visit(n) {
		return false
	}
	if !tree.preorder(n.left, visit) {
		return false
	}
	return tree.preorder(n.right, visit)
}

func (tree *Tree[T]) postorder(n *Node[T], visit func(n *Node[T]) bool) bool {
	if n == nil {
		return true
	}

	if !tree.postorder(n.left, visit) {
		return false
	}
	if !tree.postorder(n.right, visit) {
		return false
	}
	return visit(n)
}
