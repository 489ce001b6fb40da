package worker

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	triageUsecases "propdesk/internal/application/triage/usecases"
	"propdesk/internal/domain/triage"
	"propdesk/internal/infrastructure/config"
	"propdesk/internal/infrastructure/database"
	"propdesk/internal/infrastructure/pubsub"
	"propdesk/internal/infrastructure/queue"
	"propdesk/internal/infrastructure/repository"
	"propdesk/internal/shared/db"
	"propdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Start the triage worker",
		Long:  `Start the background worker that consumes triage jobs from the queue and runs the triage pipeline.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting triage worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	gormDB := database.Get()
	ticketRepo := repository.NewTicketRepository(gormDB)
	triageRepo := repository.NewTriageResultRepository(gormDB)
	tenantRepo := repository.NewTenantRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)
	contractorRepo := repository.NewContractorRepository(gormDB)

	eventPublisher := pubsub.NewRedisEventPublisher(redisClient, log)
	txMgr := db.NewTransactionManager(gormDB)

	triageUC := triageUsecases.NewTriageTicketUseCase(
		ticketRepo,
		triageRepo,
		tenantRepo,
		propertyRepo,
		triage.NewKeywordClassifier(),
		triage.NewKeywordUrgencyResolver(),
		triage.NewScoringRanker(contractorRepo, propertyRepo),
		triage.NewTemplateDraftGenerator(),
		txMgr,
		eventPublisher,
		log,
	)

	consumer := queue.NewRedisTriageConsumer(
		redisClient,
		cfg.Triage,
		triageUC,
		ticketRepo,
		eventPublisher,
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Infow("received signal, shutting down worker", "signal", sig)
		cancel()
	}()

	consumer.Run(ctx)

	log.Infow("triage worker stopped")
	return nil
}
