package main

import (
	"log"

	"github.com/ffigen/go-ffigen/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
