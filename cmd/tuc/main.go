package main

import (
	"os"

	"bennypowers.dev/tuc/internal/extract"
	"bennypowers.dev/tuc/internal/log"
	"bennypowers.dev/tuc/internal/tokens"
)

func main() {
	err := newRootCmd().Execute()
	extract.ClosePool()
	tokens.ClosePool()
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
