package main

import (
	"os"

	"github.com/superheroes-api/superheroes/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
