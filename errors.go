package rbtree

import "errors"

var (
	// ErrLinkedNode is the panic payload for an insert of a node that is
	// already part of a tree. It indicates double insertion or reuse of a
	// node across trees without an unlink in between.
	ErrLinkedNode = errors.New("node is already linked")

	// ErrUnlinkedNode is the panic payload for a delete of a node that is
	// not part of the tree. It indicates double deletion or a node whose
	// record was never inserted.
	ErrUnlinkedNode = errors.New("node is not linked")
)
