package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"bftree/bftree"

	"github.com/fatih/color"
)

// Cli is a line-oriented REPL over a Tree, in the shape of a small
// embedded-database shell: SET/GET/DEL/STATS/EXIT.
type Cli struct {
	scanner *bufio.Scanner
	tree    *bftree.Tree
}

func NewCli(s *bufio.Scanner, t *bftree.Tree) *Cli {
	return &Cli{scanner: s, tree: t}
}

func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Print(`
Buffered Tree CLI

Available Commands:
  SET <key> <val> Insert a key-value pair into the tree
  DEL <key>       Remove a key-value pair from the tree
  GET <key>       Retrieve the value for key from the tree
  STATS           Show height and live Put/Del counts
  EXIT            Terminate this session
`)
}

func (c *Cli) printPrompt() {
	fmt.Print("> ")
}

func (c *Cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		color.Red("Unknown command %q", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "stats":
		c.processStatsCommand(fields[1:])
	case "exit":
		os.Exit(0)
	}
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 2 {
		color.Yellow("Usage: SET <key> <value>")
		return
	}
	c.tree.Put([]byte(args[0]), []byte(args[1]))
	color.Green("OK")
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		color.Yellow("Usage: DEL <key>")
		return
	}
	c.tree.Del([]byte(args[0]))
	color.Green("OK")
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		color.Yellow("Usage: GET <key>")
		return
	}
	val, ok := c.tree.Get([]byte(args[0]))
	if !ok {
		color.Yellow("Key not found.")
		return
	}
	fmt.Println(string(val))
}

func (c *Cli) processStatsCommand(args []string) {
	if len(args) != 0 {
		color.Yellow("Usage: STATS")
		return
	}
	fmt.Printf("height=%d puts=%d dels=%d\n", c.tree.Height(), c.tree.PutCount(), c.tree.DelCount())
}
