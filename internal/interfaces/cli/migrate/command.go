package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tripline/tripline/internal/infrastructure/config"
	"github.com/tripline/tripline/internal/infrastructure/database"
	"github.com/tripline/tripline/internal/infrastructure/migration"
	"github.com/tripline/tripline/internal/infrastructure/persistence/seeds"
	"github.com/tripline/tripline/internal/interfaces/cli/bootstrap"
	"github.com/tripline/tripline/internal/shared/constants"
	"github.com/tripline/tripline/internal/shared/logger"
)

const defaultScriptsPath = "./internal/infrastructure/migration/scripts"

var (
	env         string
	configPath  string
	scriptsPath string
	name        string
	steps       int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, creating new migration files and seeding the place catalog.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new goose and golang-migrate script files with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&scriptsPath, "scripts", defaultScriptsPath, "Migration scripts source directory")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the place catalog",
		Long:  `Insert the development place catalog. Places that already exist are left untouched.`,
		RunE:  runSeed,
	}
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, log, err := bootstrap.Load(env, configPath)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)

	strategy, err := migration.NewStrategy(&cfg.Database, log)
	if err != nil {
		return err
	}
	if err := migration.NewManager(strategy, log).Migrate(database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func reverser(cfg *config.Config, log logger.Interface) (migration.Reverser, error) {
	strategy, err := migration.NewStrategy(&cfg.Database, log)
	if err != nil {
		return nil, err
	}
	r, ok := strategy.(migration.Reverser)
	if !ok {
		return nil, fmt.Errorf("strategy %s does not track versions", strategy.GetName())
	}
	return r, nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	r, err := reverser(cfg, log)
	if err != nil {
		return err
	}
	if err := r.MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("checking migration status", "environment", env)

	r, err := reverser(cfg, log)
	if err != nil {
		return err
	}
	version, err := r.Version(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if goose, ok := r.(*migration.GooseStrategy); ok {
		if err := goose.Status(database.Get()); err != nil {
			log.Errorw("failed to get detailed status", "error", err)
			return fmt.Errorf("failed to get detailed status: %w", err)
		}
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(scriptsPath)
	if err != nil {
		return fmt.Errorf("failed to get scripts path: %w", err)
	}

	log.Infow("creating new migration", "name", name, "scripts", dir)

	files, err := migration.NewGenerator(dir, log).Create(name)
	if err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", f)
	}
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	created, err := seeds.SeedPlaces(database.Get())
	if err != nil {
		log.Errorw("failed to seed places", "error", err)
		return fmt.Errorf("failed to seed places: %w", err)
	}

	log.Infow("place catalog seeded", "created", created, "catalog_size", len(seeds.DefaultPlaces))
	return nil
}
