package main

import "github.com/yuanweize/BTtrackers-updater/cmd"

func main() {
	cmd.Execute()
}
