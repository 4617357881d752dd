// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command search-google searches the web with the Google Custom Search JSON API.
package main

import (
	"os"

	"github.com/pdiddy/search-tools/internal/commands"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(commands.Execute(commands.NewGoogleCmd(commands.NewApp(version))))
}
