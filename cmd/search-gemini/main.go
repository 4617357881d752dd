// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Command search-gemini sends a single prompt to a Gemini model.
package main

import (
	"os"

	"github.com/pdiddy/search-tools/internal/commands"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(commands.Execute(commands.NewGeminiCmd(commands.NewApp(version))))
}
