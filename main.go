package main

import "github.com/justelson/devscope/internal/cli"

func main() {
	cli.Execute()
}
