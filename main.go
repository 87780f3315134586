package main

import "github.com/Kappa-h/fibulopedia/cmd"

func main() {
	cmd.Execute()
}
