package njson

// Kind identifies the variant a [Node] currently holds.
type Kind uint8

const (
	// KindNull is an absent or explicit null value. The zero Node is null.
	KindNull Kind = iota
	// KindObject is an ordered list of key/value members.
	KindObject
	// KindArray is an ordered list of elements.
	KindArray
	// KindString is a quoted string; the node borrows the text between the
	// quotes, escapes undecoded.
	KindString
	// KindValue is any unquoted token: numbers, booleans, and anything else
	// the parser does not recognize structurally.
	KindValue
	// KindNullPrevObject is null, retaining member storage from an earlier
	// parse so the allocation can be reused.
	KindNullPrevObject
	// KindNullPrevArray is null, retaining element storage from an earlier
	// parse so the allocation can be reused.
	KindNullPrevArray
)

// Member is one key/value entry of an object node. The key borrows from the
// parsed input.
type Member struct {
	Key   string
	Value Node
}

// Node is one value of a parsed JSON document. A Node parsed with
// [Node.Parse] borrows every string slice from that input; it stays valid
// only until the next Parse call or until the input is discarded.
//
// Nodes that held a container and were re-parsed as null keep their storage
// under the KindNullPrevObject/KindNullPrevArray variants so a later parse of
// the same slot can reuse it.
type Node struct {
	text  string
	pairs []Member
	elems []Node
	kind  Kind
}

// nullNode backs lookups that miss. Callers must treat lookup results as
// read-only.
var nullNode Node

// Kind returns the node's current variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsNull reports whether the node is logically null, including the two
// storage-carrying null variants.
func (n *Node) IsNull() bool {
	return n.kind == KindNull || n.kind == KindNullPrevObject || n.kind == KindNullPrevArray
}

// IsObject reports whether the node is an object.
func (n *Node) IsObject() bool {
	return n.kind == KindObject
}

// IsArray reports whether the node is an array.
func (n *Node) IsArray() bool {
	return n.kind == KindArray
}

// IsEmpty reports whether the node renders as empty: a null, an object whose
// members are all null, an array whose elements are all null, or the empty
// string. Unquoted value tokens are never empty.
func (n *Node) IsEmpty() bool {
	switch n.kind {
	case KindObject:
		for i := range n.pairs {
			if !n.pairs[i].Value.IsNull() {
				return false
			}
		}

		return true

	case KindArray:
		for i := range n.elems {
			if !n.elems[i].IsNull() {
				return false
			}
		}

		return true

	case KindString:
		return n.text == ""

	case KindValue:
		return false
	}

	return true
}

// Str returns the string contents when the node is a string.
func (n *Node) Str() (string, bool) {
	if n.kind != KindString {
		return "", false
	}

	return n.text, true
}

// Value returns the raw token text when the node is an unquoted value.
func (n *Node) Value() (string, bool) {
	if n.kind != KindValue {
		return "", false
	}

	return n.text, true
}

// Members returns the object's members in input order, or nil when the node
// is not an object.
func (n *Node) Members() []Member {
	if n.kind != KindObject {
		return nil
	}

	return n.pairs
}

// Elems returns the array's elements in input order, or nil when the node is
// not an array.
func (n *Node) Elems() []Node {
	if n.kind != KindArray {
		return nil
	}

	return n.elems
}

// Get returns the member value for key. Missing keys and non-object nodes
// yield the null node.
func (n *Node) Get(key string) *Node {
	if n.kind != KindObject {
		return &nullNode
	}

	for i := range n.pairs {
		if n.pairs[i].Key == key {
			return &n.pairs[i].Value
		}
	}

	return &nullNode
}

// Index returns the i-th element. Out-of-range indices and non-array nodes
// yield the null node.
func (n *Node) Index(i int) *Node {
	if n.kind != KindArray || i < 0 || i >= len(n.elems) {
		return &nullNode
	}

	return &n.elems[i]
}

// demoteToNull makes the node logically null while keeping any container
// storage it holds for reuse by the next parse.
func (n *Node) demoteToNull() {
	switch n.kind {
	case KindObject:
		n.kind = KindNullPrevObject
	case KindArray:
		n.kind = KindNullPrevArray
	case KindNullPrevObject, KindNullPrevArray:
		// Already a carrier.
	default:
		n.kind = KindNull
	}
}
