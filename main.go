package main

import (
	"os"

	"github.com/achilleasa/raymarch/cmd"
)

func main() {
	os.Exit(cmd.Run(cmd.NewApp(), os.Args))
}
