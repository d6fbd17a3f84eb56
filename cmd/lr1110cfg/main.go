package main

import "github.com/semtrx/lora/cmd/lr1110cfg/cmd"

var version string // set by the compiler

func main() {
	cmd.Execute(version)
}
