package main

import "display-sync/cmd"

func main() {
	cmd.Execute()
}
