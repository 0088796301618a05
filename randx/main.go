package main

import (
	"github.com/tutils/randx/cmd"
)

func main() {
	cmd.Execute()
}
