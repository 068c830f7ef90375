package main

import "github.com/inovacc/entrycard/cmd"

func main() {
	cmd.Execute()
}
