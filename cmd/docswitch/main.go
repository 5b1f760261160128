package main

import "docswitch/internal/cli"

func main() {
	cli.Execute()
}
