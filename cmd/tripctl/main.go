package main

import (
	"fmt"
	"os"
	"time"
)

const defaultNRShutdown = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tripctl:", err)
		os.Exit(1)
	}
}
