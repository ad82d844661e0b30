package main

import "file-agent/cmd"

func main() {
	cmd.Execute()
}
