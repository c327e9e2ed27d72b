package main

import "data-studio/cmd"

func main() {
	cmd.Execute()
}
