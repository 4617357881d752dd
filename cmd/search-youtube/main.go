// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command search-youtube searches YouTube with the Data API v3.
package main

import (
	"os"

	"github.com/pdiddy/search-tools/internal/commands"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(commands.Execute(commands.NewYouTubeCmd(commands.NewApp(version))))
}
