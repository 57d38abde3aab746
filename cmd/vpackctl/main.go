package main

import (
	"github.com/vpack/vpack/pkg/cli"
)

func main() {
	cli.Execute()
}
