package main

import "gallery-manager/cmd"

func main() {
	cmd.Execute()
}
