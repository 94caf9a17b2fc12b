package main

import (
	"github.com/uvm-dev/uvm/cmd/uvm/cmd"
)

func main() {
	cmd.Execute()
}
