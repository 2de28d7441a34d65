package main

import (
	"bufio"
	"os"

	"bftree/bftree"
	"bftree/cli"
)

func main() {
	tree := bftree.Create(bftree.Options{KeyCompare: bftree.ByteCompare})
	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, tree)
	demo.Start()
}
