package bftree

// container is an ordered partition within a node: a sorted payload chain
// plus an optional child node for keys above its first (separator) key.
type container struct {
	head  *payload
	size  int
	child *node
}

// containerInsert places payload p into node n's container at containerIdx
// (creating an empty container there if containerIdx is past the end),
// replacing an existing same-key payload in place, and triggers overflow
// handling (push-to-child or container split) whenever the container has
// grown past threshold. This fires for a direct root-level Put/Del just as
// much as for a payload arriving via pushToChild or reflow: growth only
// ever enters the tree at the root (§4.2), so gating overflow on "arrived
// via migration" would mean no container ever splits and the tree would
// never grow past height 1.
func (t *Tree) containerInsert(n *node, containerIdx int, p *payload) *container {
	var target *container
	if containerIdx >= len(n.containers) {
		containerIdx = len(n.containers)
		target = &container{}
		insertContainerAfter(n, target, containerIdx-1)
	} else {
		target = n.containers[containerIdx]
	}

	found, isEqual := lookupPayload(t.opts.KeyCompare, target.head, p.key)
	if isEqual {
		t.replace(found, p)
	} else {
		if found != nil {
			p.next = found.next
			found.next = p
		} else {
			p.next = target.head
			target.head = p
		}
		target.size++
		t.adjustCount(p.kind, 1)
	}

	if target.size > t.opts.ContainerPayloadThreshold {
		if target.child != nil {
			t.pushToChild(target)
		} else {
			t.splitContainer(n, containerIdx)
		}
	}

	return target
}

// pushToChild moves the tail half (after the head) of an overfull
// interior container's chain into its child node. Del payloads are
// dropped outright when the tree is globally delete-heavy at the start
// of the pass; everything else is routed into the right child container
// via a monotonic cursor, since the pushed payloads are already in
// ascending key order.
func (t *Tree) pushToChild(c *container) {
	compare := t.opts.KeyCompare
	skipDelete := t.delCount > t.putCount

	curr := c.head.next
	pushCount := c.size / 2
	c.size -= pushCount
	childIdx := 0

	for ; pushCount > 0; pushCount-- {
		next := curr.next
		c.head.next = next
		if curr.kind == opDel && skipDelete {
			t.dropLivePayload(curr)
		} else {
			childIdx = findContainer(compare, c.child, curr.key, childIdx)
			// containerInsert counts the payload again when it splices it.
			t.adjustCount(curr.kind, -1)
			t.containerInsert(c.child, childIdx, curr)
		}
		curr = next
	}
}

// splitContainer splits an overfull childless container in two, inserting
// the new container immediately after the original one, then checks
// whether the node itself now needs to split.
func (t *Tree) splitContainer(n *node, containerIdx int) {
	newContainer := &container{}
	insertContainerAfter(n, newContainer, containerIdx)

	target := n.containers[containerIdx]
	half := target.size / 2
	p := target.head
	for i := 0; i < half-1; i++ {
		p = p.next
	}
	newContainer.head = p.next
	p.next = nil
	newContainer.size = target.size - half
	target.size = half

	t.trySplitNode(n)
}

// reflow restores Invariant N2 after a new container has been inserted at
// rightIdx in n: the left neighbor at leftIdx may still hold payloads
// whose keys belong under the new boundary, since writes only migrate
// down lazily. Any such payloads are detached from the left chain and
// reinserted into the right container (cascading further splits/pushes
// as needed). A duplicate key is resolved by keeping right's head payload
// (it must remain the right container's separator) and writing the
// fresher, still-shallow left copy's value into it, then dropping the
// now-redundant left entry.
func (t *Tree) reflow(n *node, leftIdx, rightIdx int) {
	left := n.containers[leftIdx]
	right := n.containers[rightIdx]
	compare := t.opts.KeyCompare

	matched, isEqual := lookupPayload(compare, left.head, right.head.key)

	var sep *payload
	if isEqual {
		var prev *payload
		for curr := left.head; curr != matched; curr = curr.next {
			prev = curr
		}
		if prev != nil {
			prev.next = matched.next
		} else {
			left.head = matched.next
		}
		t.adjustCount(matched.kind, -1)
		t.replace(right.head, matched)
		left.size--
		sep = prev
	} else {
		sep = matched
	}

	var curr *payload
	if sep != nil {
		curr = sep.next
		sep.next = nil
	} else {
		curr = left.head
		left.head = nil
	}

	for curr != nil {
		next := curr.next
		left.size--
		t.adjustCount(curr.kind, -1)
		t.containerInsert(n, rightIdx, curr)
		curr = next
	}
}
