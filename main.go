package main

import "github.com/KaramelBytes/payscope-cli/cmd"

func main() {
	cmd.Execute()
}
