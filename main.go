package main

import "github.com/Rorical/SheetRelay/cmd"

func main() {
	cmd.Execute()
}
