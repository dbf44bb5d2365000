package main

import "github.com/pfrederiksen/nba-mvp/internal/cli"

func main() {
	cli.Execute()
}
