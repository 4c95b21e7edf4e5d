package main

import (
	"os"

	"github.com/schoolboyqueue/toastr/internal/cli"
	"github.com/schoolboyqueue/toastr/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}
