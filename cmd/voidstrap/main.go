package main

import "voidstrap/cmd/voidstrap/cmd"

func main() {
	cmd.Execute()
}
