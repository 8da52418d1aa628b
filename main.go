package main

import "github.com/alexiusacademia/gobox/cmd"

func main() {
	cmd.Execute()
}
