package main

import "vocabsearch/internal/cli"

func main() {
	cli.Execute()
}
