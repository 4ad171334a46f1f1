package main

import (
	"github.com/pkarhu/pokernight/internal/cli"
)

func main() {
	cli.Execute()
}
