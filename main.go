package main

import "github.com/callmegreg/gh-worm-hunt/cmd"

func main() {
	cmd.Execute()
}
