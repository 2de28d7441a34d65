package bftree

// opKind distinguishes a live write from a tombstone within a payload chain.
type opKind int

const (
	opPut opKind = iota
	opDel
)

// payload is a single buffered put/del, held in a sorted singly-linked
// chain inside a container. The tree owns the key and value; they are
// released through the tree's destructors when the payload is retired.
type payload struct {
	key  []byte
	val  []byte
	kind opKind
	next *payload
}

func newPayload(key, val []byte, kind opKind) *payload {
	return &payload{key: key, val: val, kind: kind}
}

// lookupPayload scans a sorted chain for key, returning the equal payload
// and true if found, or the greatest payload strictly less than key (nil
// if none) and false otherwise.
func lookupPayload(compare CompareFunc, head *payload, key []byte) (*payload, bool) {
	var prev *payload
	for curr := head; curr != nil; curr = curr.next {
		switch cmp := compare(key, curr.key); {
		case cmp == 0:
			return curr, true
		case cmp < 0:
			return prev, false
		}
		prev = curr
	}
	return prev, false
}

// destructPayload runs the tree's key/value destructors on p without
// touching the live counters. Used when releasing the losing side of a
// replace-in-place, which is not counted as live at that point.
func (t *Tree) destructPayload(p *payload) {
	if p.key != nil && t.opts.KeyDestructor != nil {
		t.opts.KeyDestructor(p.key)
	}
	if p.val != nil && t.opts.ValueDestructor != nil {
		t.opts.ValueDestructor(p.val)
	}
}

func (t *Tree) adjustCount(kind opKind, delta int) {
	if kind == opPut {
		t.putCount += delta
	} else {
		t.delCount += delta
	}
}

// dropLivePayload destructs and uncounts a payload that was live in a
// container chain (suppressed delete during push-to-child, or teardown).
func (t *Tree) dropLivePayload(p *payload) {
	t.destructPayload(p)
	t.adjustCount(p.kind, -1)
}

// replace implements last-writer-wins for two payloads sharing a key:
// older absorbs newer's value and kind, and newer is then released.
// older keeps its identity (and its place in whatever chain it lives in);
// only its fields change.
func (t *Tree) replace(older, newer *payload) {
	if older.kind != newer.kind {
		t.adjustCount(older.kind, -1)
		t.adjustCount(newer.kind, 1)
	}
	older.val, newer.val = newer.val, older.val
	older.kind = newer.kind
	t.destructPayload(newer)
}
