package main

import (
	"fmt"
	"os"
)

const configFile = "config.json"

func main() {
	if err := run(configFile, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
