package main

import (
	"fmt"
	"os"

	"github.com/ytget/swipeplayer/internal/bootstrap"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// Packaged builds take configuration from preferences and the environment only
	if err := bootstrap.Run(bootstrap.Options{Version: version}); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", bootstrap.AppName, err)
		os.Exit(1)
	}
}
