package main

import "sip-planner/cli"

func main() {
	cli.Execute()
}
