package main

import "github.com/prosolvesimulation-blip/prosolvesimulation/cmd"

func main() {
	cmd.Execute()
}
