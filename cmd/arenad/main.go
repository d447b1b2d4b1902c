package main

import "github.com/Wielop1/x1-mining-arena/cmd/arenad/cmd"

func main() {
	cmd.Execute()
}
