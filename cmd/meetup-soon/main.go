package main

import (
	"github.com/pfrederiksen/meetup-soon/internal/cli"
)

func main() {
	cli.Execute()
}
