package main

import "github.com/mcoot/mazedle-go/internal/cli"

func main() {
	cli.Execute()
}
