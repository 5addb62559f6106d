package main

import "github.com/phanxgames/grove/cmd/grove/cmd"

func main() {
	cmd.Execute()
}
