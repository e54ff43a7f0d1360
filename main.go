package main

import "invite-tracker/cmd"

func main() {
	cmd.Execute()
}
