package main

import (
	"os"

	"user-post-service/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
