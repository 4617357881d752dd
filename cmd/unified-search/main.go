// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command unified-search dispatches one query to Gemini, Google or YouTube.
package main

import (
	"os"

	"github.com/pdiddy/search-tools/internal/commands"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(commands.Execute(commands.NewUnifiedCmd(commands.NewApp(version))))
}
