package main

import "github.com/jonaylor89/risp/cmd"

func main() {
	cmd.Execute()
}
