package main

import "github.com/Tiliavir/trivial-trip-planner/cmd"

func main() {
	cmd.Execute()
}
