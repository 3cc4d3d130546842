package main

import "github.com/R167/tlscheck/cmd"

func main() {
	cmd.Execute()
}
