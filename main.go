package main

import "github.com/HubLot/PBxplore/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
