package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tripline/tripline/internal/interfaces/cli/migrate"
	"github.com/tripline/tripline/internal/interfaces/cli/server"
	"github.com/tripline/tripline/internal/interfaces/cli/token"
)

// @title Tripline API
// @version 1.0
// @description Collaborative trip itinerary planning API.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "tripline",
		Short: "Tripline - collaborative trip itinerary planner",
		Long:  `Tripline serves the trip plan, itinerary, invitation and bookmark API, and ships the migration and token tools that go with it.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
