package main

import (
	"log"

	"github.com/vpack/vpack/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
