package main

import "github.com/hamzanaeem10/ApexAnalyst/cmd"

func main() {
	cmd.Execute()
}
