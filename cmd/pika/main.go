// Package main enables pika to execute as a CLI tool
package main

import (
	"os"

	"github.com/pika-lang/pika/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
