package main

import "llkit/cmd"

func main() {
	cmd.Execute()
}
