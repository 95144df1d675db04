package main

import "github.com/ossianhempel/sl-cli/cmd"

func main() {
	cmd.Execute()
}
