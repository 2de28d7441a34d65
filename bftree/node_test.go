package bftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainFromKeys(keys ...string) *payload {
	var head, tail *payload
	for _, k := range keys {
		p := newPayload([]byte(k), []byte(k), opPut)
		if head == nil {
			head = p
		} else {
			tail.next = p
		}
		tail = p
	}
	return head
}

func containerWithSep(sep string) *container {
	return &container{head: chainFromKeys(sep), size: 1}
}

func TestFindContainerEmptyNode(t *testing.T) {
	n := &node{}
	assert.Equal(t, 0, findContainer(ByteCompare, n, []byte("x"), 0))
}

func TestFindContainerRouting(t *testing.T) {
	n := &node{containers: []*container{
		containerWithSep("b"),
		containerWithSep("d"),
		containerWithSep("f"),
	}}

	assert.Equal(t, 0, findContainer(ByteCompare, n, []byte("a"), 0), "below first separator clamps to 0")
	assert.Equal(t, 0, findContainer(ByteCompare, n, []byte("b"), 0))
	assert.Equal(t, 0, findContainer(ByteCompare, n, []byte("c"), 0))
	assert.Equal(t, 1, findContainer(ByteCompare, n, []byte("d"), 0))
	assert.Equal(t, 1, findContainer(ByteCompare, n, []byte("e"), 0))
	assert.Equal(t, 2, findContainer(ByteCompare, n, []byte("z"), 0))
}

func TestFindContainerWithStart(t *testing.T) {
	n := &node{containers: []*container{
		containerWithSep("a"),
		containerWithSep("b"),
		containerWithSep("c"),
	}}
	// A cursor at 1 never looks back at container 0.
	assert.Equal(t, 1, findContainer(ByteCompare, n, []byte("a"), 1))
}

func TestInsertContainerAfterOnEmptyNode(t *testing.T) {
	n := &node{}
	c := containerWithSep("m")
	insertContainerAfter(n, c, 0)
	require.Len(t, n.containers, 1)
	assert.Same(t, c, n.containers[0])
}

func TestInsertContainerAfterMiddle(t *testing.T) {
	a, b, c := containerWithSep("a"), containerWithSep("b"), containerWithSep("c")
	n := &node{containers: []*container{a, c}}
	insertContainerAfter(n, b, 0)
	require.Len(t, n.containers, 3)
	assert.Same(t, a, n.containers[0])
	assert.Same(t, b, n.containers[1])
	assert.Same(t, c, n.containers[2])
}

func TestInsertContainerAfterEnd(t *testing.T) {
	a, b := containerWithSep("a"), containerWithSep("b")
	n := &node{containers: []*container{a}}
	insertContainerAfter(n, b, 0)
	require.Len(t, n.containers, 2)
	assert.Same(t, b, n.containers[1])
}

func TestRemoveContainerAt(t *testing.T) {
	a, b, c := containerWithSep("a"), containerWithSep("b"), containerWithSep("c")
	n := &node{containers: []*container{a, b, c}}
	removed := removeContainerAt(n, 0)
	assert.Same(t, a, removed)
	require.Len(t, n.containers, 2)
	assert.Same(t, b, n.containers[0])
	assert.Same(t, c, n.containers[1])
}
