package rbtree

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertFindDelete(t *testing.T) {
	tree := New[*entry](nil)
	require.NotNil(t, tree)

	n := 1000
	list := make([]*entry, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, newEntry(i))
		tree.Insert(&list[i].node)
	}

	require.Equal(t, n, tree.Size())
	require.NoError(t, tree.Validate())

	for i := 0; i < n; i++ {
		found := tree.Find(newEntry(i))
		require.NotNil(t, found)
		require.Equal(t, i, found.Item().val)
	}

	for i := 0; i < n; i++ {
		removed, _ := tree.Delete(newEntry(i))
		require.NotNil(t, removed)
	}

	require.True(t, tree.IsEmpty())
	require.NoError(t, tree.Validate())
}

func TestAscendingInsertRebalancesRoot(t *testing.T) {
	tree := New[*entry](nil)
	e1, e2, e3 := newEntry(1), newEntry(2), newEntry(3)
	tree.Insert(&e1.node)
	tree.Insert(&e2.node)
	tree.Insert(&e3.node)

	require.Same(t, &e2.node, tree.root)
	require.Equal(t, NODE_BLACK, tree.root.color)
	require.Same(t, &e1.node, tree.root.left)
	require.Same(t, &e3.node, tree.root.right)
	require.Equal(t, []int{1, 2, 3}, inorderVals(tree))
	require.NoError(t, tree.Validate())
}

func TestDeleteRootValue(t *testing.T) {
	tree := New[*entry](nil)
	list := insertAll(tree, 50, 30, 70, 20, 40, 60, 80)
	require.NoError(t, tree.Validate())

	removed, next := tree.Delete(newEntry(50))

	// The record that matched 50 stays linked and receives the
	// successor's payload; the successor's node is the one that left.
	require.Same(t, &list[5].node, removed)
	require.False(t, removed.Linked())
	require.Same(t, &list[0].node, next)
	require.Equal(t, 60, list[0].val)

	require.Equal(t, []int{20, 30, 40, 60, 70, 80}, inorderVals(tree))
	require.NoError(t, tree.Validate())
}

func TestClear(t *testing.T) {
	tree := New[*entry](nil)
	list := insertAll(tree, 5, 3, 8, 1)

	tree.Clear()

	require.True(t, tree.IsEmpty())
	require.Nil(t, tree.First())
	require.NoError(t, tree.Validate())
	for _, e := range list {
		require.False(t, e.node.Linked())
	}

	// records come back unlinked and are immediately reusable
	tree.Insert(&list[0].node)
	require.Equal(t, 1, tree.Size())
	require.NoError(t, tree.Validate())
}

func TestZeroValueTree(t *testing.T) {
	var tree Tree[*entry]

	require.True(t, tree.IsEmpty())
	require.Nil(t, tree.Find(newEntry(1)))
	require.Nil(t, tree.First())
	require.Nil(t, tree.Last())
	require.Nil(t, tree.Min())
	require.Nil(t, tree.Max())

	removed, next := tree.Delete(newEntry(1))
	require.Nil(t, removed)
	require.Nil(t, next)

	e := newEntry(7)
	tree.Insert(&e.node)
	require.Equal(t, 1, tree.Size())
	require.NoError(t, tree.Validate())
}

func TestNilTree(t *testing.T) {
	var tree *Tree[*entry]

	tree.Insert(&newEntry(1).node)
	tree.Clear()
	require.Nil(t, tree.Find(newEntry(1)))
	require.Equal(t, 0, tree.Size())
	require.True(t, tree.IsEmpty())
	require.NoError(t, tree.Validate())

	removed, next := tree.DeleteAt(nil)
	require.Nil(t, removed)
	require.Nil(t, next)
}

func TestNilNode(t *testing.T) {
	tree := New[*entry](nil)
	tree.Insert(nil)
	tree.InsertAt(nil, nil)
	require.True(t, tree.IsEmpty())

	removed, next := tree.DeleteAt(nil)
	require.Nil(t, removed)
	require.Nil(t, next)
}

func TestString(t *testing.T) {
	tree := New[*entry](&Options{CacheMin: true})
	insertAll(tree, 2, 1)

	require.Contains(t, tree.String(), "size=2")
	require.Contains(t, tree.String(), "cacheMin=true")
	require.NotEmpty(t, tree.dump())
}

// entry is the record type used across the test suite: a single ordered
// payload field with the tree link embedded next to it.
type entry struct {
	val  int
	node Node[*entry]
}

func newEntry(val int) *entry {
	e := &entry{val: val}
	e.node.Init(e)
	return e
}

func (e *entry) Compare(other *entry) int {
	switch {
	case e.val < other.val:
		return -1
	case e.val > other.val:
		return 1
	default:
		return 0
	}
}

func (e *entry) Assign(src *entry) {
	e.val = src.val
}

func (e *entry) String() string {
	return strconv.Itoa(e.val)
}

func assert(t *testing.T, cond bool, msg string, args ...interface{}) {
	if cond {
		return
	}
	t.Errorf(msg, args...)
}

func insertAll(tree *Tree[*entry], vals ...int) []*entry {
	list := make([]*entry, 0, len(vals))
	for _, v := range vals {
		e := newEntry(v)
		list = append(list, e)
		tree.Insert(&e.node)
	}
	return list
}

func inorderVals(tree *Tree[*entry]) []int {
	vals := []int{}
	tree.InOrder(func(n *Node[*entry]) bool {
		vals = append(vals, n.Item().val)
		return true
	})
	return vals
}
