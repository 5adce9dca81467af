package rbtree

import (
	"fmt"
	"strings"
)

func (c color) String() string {
	if c == NODE_RED {
		return "R"
	}
	return "B"
}

// String returns a one-line summary of the tree.
func (tree *Tree[T]) String() string {
	if tree == nil {
		return "Tree{nil}"
	}

	return fmt.Sprintf(
		"Tree{size=%d, cacheMin=%v, cacheMax=%v}",
		tree.size, tree.opts.CacheMin, tree.opts.CacheMax,
	)
}

// Print dumps the tree sideways to stdout for debugging, right subtree
// first, one node per line with its color.
func (tree *Tree[T]) Print() {
	fmt.Println("============= rbtree =============")
	fmt.Print(tree.dump())
	fmt.Println("==================================")
}

func (tree *Tree[T]) dump() string {
	if tree == nil || tree.root == nil {
		return "<empty>\n"
	}

	sb := &strings.Builder{}
	tree.print(sb, tree.root, 0)
	return sb.String()
}

func (tree *Tree[T]) print(sb *strings.Builder, n *Node[T], indent int) {
	if n == nil {
		return
	}

	tree.print(sb, n.right, indent+4)
	fmt.Fprintf(sb, "%*s%v(%s)\n", indent, "", n.item, n.color)
	tree.print(sb, n.left, indent+4)
}
