package main

import "chat-directory/cmd"

func main() {
	cmd.Execute()
}
