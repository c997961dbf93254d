package main

import "github.com/mcoot/easylog/internal/cli"

func main() {
	cli.Execute()
}
