package main

import "static-server/cmd"

func main() {
	cmd.Execute()
}
