package main

import "github.com/they4kman/gobattleship/cmd"

func main() {
	cmd.Execute()
}
