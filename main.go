package main

import "github.com/pistofo/jules-virtual-piano/cmd"

func main() {
	cmd.Execute()
}
