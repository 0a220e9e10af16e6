package main

import "pixi-envsync/internal/cli"

func main() {
	cli.Execute()
}
