// Package bftree implements an in-memory, ordered key/value buffered
// search tree: each node's containers accumulate writes at the root and
// migrate them downward lazily, amortizing the cost of insertion by
// batching mutations along a root-to-leaf path.
package bftree

// CompareFunc is a caller-supplied total order over keys. It must be a
// pure function of its two borrowed arguments and must not retain them.
type CompareFunc func(a, b []byte) int

// DestructorFunc releases memory the tree no longer needs. A nil
// destructor means the tree does not own that memory.
type DestructorFunc func([]byte)

// Status is the result of a mutating operation. The core has no runtime
// failure return; OK is the only status code.
type Status int

// OK is the sole status code returned by Put and Del.
const OK Status = 0

func (s Status) String() string {
	return "OK"
}

const (
	// DefaultContainerPayloadThreshold is the payload count above which a
	// container is redistributed (pushed into its child, or split) on the
	// insert that overfills it.
	DefaultContainerPayloadThreshold = 8
	// DefaultNodeContainerThreshold is the container count at which a
	// node is split.
	DefaultNodeContainerThreshold = 16
	// DefaultContainerCapacity is the initial container-array capacity
	// for a freshly created node.
	DefaultContainerCapacity = 4
)

// Options configures a Tree. KeyCompare is required; everything else has
// a default.
type Options struct {
	KeyCompare      CompareFunc
	KeyDestructor   DestructorFunc
	ValueDestructor DestructorFunc

	ContainerPayloadThreshold int
	NodeContainerThreshold    int
	DefaultContainerCapacity  int
}

func (o *Options) setDefaults() {
	if o.ContainerPayloadThreshold <= 0 {
		o.ContainerPayloadThreshold = DefaultContainerPayloadThreshold
	}
	if o.NodeContainerThreshold <= 0 {
		o.NodeContainerThreshold = DefaultNodeContainerThreshold
	}
	if o.DefaultContainerCapacity <= 0 {
		o.DefaultContainerCapacity = DefaultContainerCapacity
	}
}

// Tree is the root handle: the root node, height, comparator,
// destructors, and the live Put/Del payload counters.
type Tree struct {
	root     *node
	height   int
	opts     Options
	putCount int
	delCount int
}

// Create builds an empty Tree. KeyCompare is required and Create panics
// if it is nil; every other option falls back to its documented default.
func Create(opts Options) *Tree {
	if opts.KeyCompare == nil {
		panic("bftree: Options.KeyCompare is required")
	}
	opts.setDefaults()

	t := &Tree{
		height: 1,
		opts:   opts,
	}
	t.root = t.newNode(nil)
	return t
}

// Height returns the current tree height (Invariant T1: all leaves sit
// at this depth). It is non-decreasing over the tree's lifetime.
func (t *Tree) Height() int { return t.height }

// PutCount returns the number of live Put payloads in the tree.
func (t *Tree) PutCount() int { return t.putCount }

// DelCount returns the number of live Del (tombstone) payloads in the tree.
func (t *Tree) DelCount() int { return t.delCount }

// Put inserts or overwrites the value for key. The tree takes ownership
// of both key and val; the caller must not mutate or free them after
// this call returns.
func (t *Tree) Put(key, val []byte) Status {
	idx := findContainer(t.opts.KeyCompare, t.root, key, 0)
	t.containerInsert(t.root, idx, newPayload(key, val, opPut))
	return OK
}

// Del marks key as deleted. The tree takes ownership of key; a del on an
// absent key is not an error, it inserts a tombstone that may later be
// absorbed by the delete-suppression heuristic.
func (t *Tree) Del(key []byte) Status {
	idx := findContainer(t.opts.KeyCompare, t.root, key, 0)
	t.containerInsert(t.root, idx, newPayload(key, nil, opDel))
	return OK
}

// Get looks up key, descending container by container from the root and
// stopping at the first payload with that key. A Del marker therefore
// hides any entry for the key deeper in the tree; a missing key is not an
// error.
func (t *Tree) Get(key []byte) ([]byte, bool) {
	idx := findContainer(t.opts.KeyCompare, t.root, key, 0)
	return t.containerGet(t.root, idx, key)
}

func (t *Tree) containerGet(n *node, idx int, key []byte) ([]byte, bool) {
	for {
		if idx >= len(n.containers) {
			return nil, false
		}
		c := n.containers[idx]
		p, isEqual := lookupPayload(t.opts.KeyCompare, c.head, key)
		if isEqual {
			if p.kind == opPut {
				return p.val, true
			}
			return nil, false
		}
		if c.child == nil {
			return nil, false
		}
		n = c.child
		idx = findContainer(t.opts.KeyCompare, n, key, 0)
	}
}

// Destroy releases every payload, container, and node in the tree
// through the configured destructors. The tree must not be used
// afterward. Teardown is iterative rather than recursive so that very
// tall trees don't risk blowing the call stack.
func (t *Tree) Destroy() {
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, c := range n.containers {
			destroyChain(t, c.head)
		}
		for _, c := range n.containers {
			if c.child != nil {
				stack = append(stack, c.child)
			}
		}
		n.containers = nil
	}
	t.root = nil
}

func destroyChain(t *Tree, p *payload) {
	for p != nil {
		next := p.next
		t.dropLivePayload(p)
		p = next
	}
}
