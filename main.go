package main

import "github.com/bakito/releaser/cmd"

func main() {
	cmd.Execute()
}
