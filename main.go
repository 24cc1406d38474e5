package main

import "spell-miner/cmd"

func main() {
	cmd.Execute()
}
