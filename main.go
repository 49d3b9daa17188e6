package main

import "github.com/urejgi/first-interpreter/cmd"

func main() {
	cmd.Execute()
}
