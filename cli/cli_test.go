package cli

import (
	"bufio"
	"strings"
	"testing"

	"bftree/bftree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCli() *Cli {
	tree := bftree.Create(bftree.Options{KeyCompare: bftree.ByteCompare})
	return NewCli(bufio.NewScanner(strings.NewReader("")), tree)
}

func TestProcessSetThenGet(t *testing.T) {
	c := newTestCli()
	c.processInput("SET k v")

	val, ok := c.tree.Get([]byte("k"))
	require.True(t, ok)
	assert.Equal(t, "v", string(val))
}

func TestProcessSetWrongArity(t *testing.T) {
	c := newTestCli()
	c.processInput("SET onlykey")

	_, ok := c.tree.Get([]byte("onlykey"))
	assert.False(t, ok)
}

func TestProcessDelRemovesKey(t *testing.T) {
	c := newTestCli()
	c.processInput("SET k v")
	c.processInput("DEL k")

	_, ok := c.tree.Get([]byte("k"))
	assert.False(t, ok)
}

func TestProcessGetMissingKeyDoesNotPanic(t *testing.T) {
	c := newTestCli()
	assert.NotPanics(t, func() {
		c.processInput("GET nope")
	})
}

func TestProcessStatsReflectsPutDelCounts(t *testing.T) {
	c := newTestCli()
	c.processInput("SET a 1")
	c.processInput("SET b 2")
	c.processInput("DEL a")

	assert.Equal(t, 1, c.tree.PutCount())
	assert.Equal(t, 1, c.tree.DelCount())
	assert.NotPanics(t, func() {
		c.processInput("STATS")
	})
}

func TestProcessInputIsCaseInsensitive(t *testing.T) {
	c := newTestCli()
	c.processInput("SeT k v")

	val, ok := c.tree.Get([]byte("k"))
	require.True(t, ok)
	assert.Equal(t, "v", string(val))
}

func TestProcessInputBlankLineIsNoop(t *testing.T) {
	c := newTestCli()
	assert.NotPanics(t, func() {
		c.processInput("")
		c.processInput("   ")
	})
}

func TestProcessInputUnknownCommandDoesNotPanic(t *testing.T) {
	c := newTestCli()
	assert.NotPanics(t, func() {
		c.processInput("FROBNICATE x")
	})
}
