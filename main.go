package main

import "github.com/chxlky/taskboard-api/cmd"

func main() {
	cmd.Execute()
}
