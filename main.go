package main

import "github.com/jywlabs/promptbuilder/cmd"

func main() {
	cmd.Execute()
}
