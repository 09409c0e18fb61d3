package main

import "github.com/rohitraj29/big-data-stack/cmd"

func main() {
	cmd.Execute()
}
