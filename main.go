package main

import "github.com/CyberFlameGO/alumina/cmd"

func main() {
	cmd.Execute()
}
