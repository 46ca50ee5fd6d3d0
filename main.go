package main

import "rogueblight/cmd"

func main() {
	cmd.Execute()
}
