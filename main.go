package main

import "github.com/redneckbeard/rangedint/cmd"

func main() {
	cmd.Execute()
}
