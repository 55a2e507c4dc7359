package main

import "fxpath/internal/cli"

func main() {
	cli.Execute()
}
