package main

import (
	"os"

	"github.com/GlebRadaev/globalfund/internal/cli"
)

func main() {
	os.Exit(cli.New().Execute())
}
