package main

import "nineblock.dev/sudoku/cmd"

func main() {
	cmd.Execute()
}
