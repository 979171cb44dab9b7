package main

import (
	"os"

	"bikenode/data"
	"bikenode/search"
	"bikenode/utils"
)

func main() {
	logger := utils.NewLogger()

	brands, err := data.BrandMetadata()
	if err != nil {
		logger.Error("Cannot load brand metadata: %v", err)
		return
	}

	if len(os.Args) > 1 {
		search.RunOnce(brands, os.Args[1:], os.Stdout)
		return
	}

	shell := search.NewShell(brands, os.Stdin, os.Stdout)
	defer shell.Close()
	if err := shell.Run(); err != nil {
		logger.Error("%v", err)
	}
}
