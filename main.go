package main

import "github.com/mouse-blink/bloch/cmd"

func main() {
	cmd.Execute()
}
