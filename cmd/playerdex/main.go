package main

import "github.com/tsimard/playerdex/internal/cli"

func main() {
	cli.Execute()
}
