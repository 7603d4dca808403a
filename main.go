package main

import "outfit-picker/cmd"

func main() {
	cmd.Execute()
}
