package main

import "guardhooks/cmd"

func main() {
	cmd.Execute()
}
