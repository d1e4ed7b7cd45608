package main

import "github.com/mouse-blink/cooplint/cmd"

func main() {
	cmd.Execute()
}
