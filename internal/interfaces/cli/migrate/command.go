package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"propdesk/internal/infrastructure/config"
	"propdesk/internal/infrastructure/database"
	"propdesk/internal/infrastructure/migration"
	"propdesk/internal/shared/logger"
)

var (
	env      string
	skipSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply the database schema and seed the default tenant when the database is empty.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Skip seeding the default tenant")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get(), log); err != nil {
		return err
	}

	if !skipSeed {
		if err := migration.SeedDefaultTenant(database.Get(), log); err != nil {
			return err
		}
	}

	return nil
}
