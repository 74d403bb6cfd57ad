package main

import "github.com/alexiusacademia/aci318/cmd"

func main() {
	cmd.Execute()
}
