package main

import "github.com/wearkit/wearface/cmd/wearface/cmd"

func main() {
	cmd.Execute()
}
