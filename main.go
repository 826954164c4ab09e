package main

import (
	"dbgvis/cmd"
	"log"
	"os"
)

func main() {
	app := cmd.NewVis()

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
