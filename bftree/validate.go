package bftree

import "fmt"

// Validate walks the whole tree asserting N1 (across-container order),
// N2 (routing), P1 (within-container order), P2 (container non-empty),
// T1 (uniform leaf depth), and T2 (live counters match live payloads).
// It is not called anywhere in the hot path; it exists for debug builds
// and tests.
func (t *Tree) Validate() error {
	if t.root == nil {
		return nil
	}
	var leafDepths []int
	var puts, dels int
	if err := t.validateNode(t.root, nil, nil, 1, &leafDepths, &puts, &dels); err != nil {
		return err
	}
	for _, d := range leafDepths {
		if d != t.height {
			return fmt.Errorf("bftree: leaf at depth %d, want %d (Invariant T1)", d, t.height)
		}
	}
	if puts != t.putCount {
		return fmt.Errorf("bftree: live Put count %d, tree says %d (Invariant T2)", puts, t.putCount)
	}
	if dels != t.delCount {
		return fmt.Errorf("bftree: live Del count %d, tree says %d (Invariant T2)", dels, t.delCount)
	}
	return nil
}

// validateNode checks node n, whose subtree must only contain keys in
// [lowKey, highKey) (nil bounds mean unbounded).
func (t *Tree) validateNode(n *node, lowKey, highKey []byte, depth int, leafDepths *[]int, puts, dels *int) error {
	compare := t.opts.KeyCompare

	if len(n.containers) == 0 {
		*leafDepths = append(*leafDepths, depth)
		return nil
	}

	hasChild := false
	for i, c := range n.containers {
		if c.head == nil {
			return fmt.Errorf("bftree: container %d at depth %d is empty (Invariant P2)", i, depth)
		}
		if i > 0 {
			prevSep := n.containers[i-1].head.key
			if compare(prevSep, c.head.key) >= 0 {
				return fmt.Errorf("bftree: containers %d,%d out of order (Invariant N1)", i-1, i)
			}
		}
		if lowKey != nil && compare(c.head.key, lowKey) < 0 {
			return fmt.Errorf("bftree: container %d separator below subtree lower bound (Invariant N2)", i)
		}

		if err := t.validateChain(c.head, puts, dels); err != nil {
			return err
		}

		var childHigh []byte
		if i+1 < len(n.containers) {
			childHigh = n.containers[i+1].head.key
		} else {
			childHigh = highKey
		}
		if childHigh != nil {
			last := c.head
			for last.next != nil {
				last = last.next
			}
			if compare(last.key, childHigh) >= 0 {
				return fmt.Errorf("bftree: container %d holds a key at or above its upper bound (Invariant N2)", i)
			}
		}

		if c.child != nil {
			hasChild = true
			if c.child.parent != n {
				return fmt.Errorf("bftree: container %d child's parent back-reference is stale", i)
			}
			if err := t.validateNode(c.child, c.head.key, childHigh, depth+1, leafDepths, puts, dels); err != nil {
				return err
			}
		}
	}
	if !hasChild {
		*leafDepths = append(*leafDepths, depth)
	}
	return nil
}

func (t *Tree) validateChain(head *payload, puts, dels *int) error {
	compare := t.opts.KeyCompare
	for curr := head; curr != nil; curr = curr.next {
		if curr.kind == opPut {
			*puts++
		} else {
			*dels++
		}
		if curr.next != nil && compare(curr.key, curr.next.key) >= 0 {
			return fmt.Errorf("bftree: chain out of order (Invariant P1)")
		}
	}
	return nil
}
