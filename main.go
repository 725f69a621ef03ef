// Package main is the entry point for the obsidian-link application.
package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/obsidian-link/obsidian-link/cmd"
	"github.com/obsidian-link/obsidian-link/config"
	"github.com/obsidian-link/obsidian-link/internal/cache"
	"github.com/obsidian-link/obsidian-link/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Prune expired cache files in the background while the command runs.
	go cache.CollectGarbage()

	cmd.Execute()
}
