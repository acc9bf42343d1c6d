package main

import "github.com/White-On/transilien-bot/cmd"

func main() {
	cmd.Execute()
}
