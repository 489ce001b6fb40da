package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contractorUsecases "propdesk/internal/application/contractor/usecases"
	propertyUsecases "propdesk/internal/application/property/usecases"
	ticketUsecases "propdesk/internal/application/ticket/usecases"
	"propdesk/internal/domain/ticket"
	"propdesk/internal/infrastructure/config"
	"propdesk/internal/infrastructure/email"
	"propdesk/internal/infrastructure/pubsub"
	"propdesk/internal/infrastructure/queue"
	"propdesk/internal/infrastructure/repository"
	"propdesk/internal/infrastructure/scheduler"
	contractorHandlers "propdesk/internal/interfaces/http/handlers/contractor"
	propertyHandlers "propdesk/internal/interfaces/http/handlers/property"
	ticketHandlers "propdesk/internal/interfaces/http/handlers/ticket"
	"propdesk/internal/interfaces/http/middleware"
	"propdesk/internal/shared/logger"
)

// Container wires repositories, use cases, handlers, and background jobs for
// the API server, and owns graceful shutdown of the pieces it started.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	scheduler *scheduler.SchedulerManager

	publicHandler     *ticketHandlers.PublicHandler
	ticketHandler     *ticketHandlers.TicketHandler
	contractorHandler *contractorHandlers.ContractorHandler
	propertyHandler   *propertyHandlers.PropertyHandler
	tenantMiddleware  *middleware.TenantMiddleware
}

func NewContainer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	// Repositories
	tenantRepo := repository.NewTenantRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	contractorRepo := repository.NewContractorRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	triageRepo := repository.NewTriageResultRepository(db)

	// Infrastructure services
	triageProducer := queue.NewRedisTriageProducer(redisClient, cfg.Triage.QueueKey, log)
	eventPublisher := pubsub.NewRedisEventPublisher(redisClient, log)
	emailSender := email.NewSMTPSender(cfg.Email)
	refGenerator := ticket.NewRandomReferenceGenerator()

	// Ticket use cases
	submitTicketUC := ticketUsecases.NewSubmitTicketUseCase(ticketRepo, refGenerator, triageProducer, eventPublisher, log)
	getByRefUC := ticketUsecases.NewGetTicketByReferenceUseCase(ticketRepo, log)
	addMessageUC := ticketUsecases.NewAddMessageUseCase(ticketRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, triageRepo, log)
	updateStatusUC := ticketUsecases.NewUpdateTicketStatusUseCase(ticketRepo, log)
	reprocessUC := ticketUsecases.NewReprocessTicketUseCase(ticketRepo, triageProducer, log)
	sendEmailUC := ticketUsecases.NewSendContractorEmailUseCase(ticketRepo, triageRepo, contractorRepo, emailSender, eventPublisher, log)
	triageHistoryUC := ticketUsecases.NewGetTriageHistoryUseCase(ticketRepo, triageRepo, log)

	// Contractor use cases
	createContractorUC := contractorUsecases.NewCreateContractorUseCase(contractorRepo, log)
	updateContractorUC := contractorUsecases.NewUpdateContractorUseCase(contractorRepo, log)
	deleteContractorUC := contractorUsecases.NewDeleteContractorUseCase(contractorRepo, log)
	getContractorUC := contractorUsecases.NewGetContractorUseCase(contractorRepo, log)
	listContractorsUC := contractorUsecases.NewListContractorsUseCase(contractorRepo, log)

	// Property use cases
	createPropertyUC := propertyUsecases.NewCreatePropertyUseCase(propertyRepo, log)
	updatePropertyUC := propertyUsecases.NewUpdatePropertyUseCase(propertyRepo, log)
	deletePropertyUC := propertyUsecases.NewDeletePropertyUseCase(propertyRepo, log)
	getPropertyUC := propertyUsecases.NewGetPropertyUseCase(propertyRepo, log)
	listPropertiesUC := propertyUsecases.NewListPropertiesUseCase(propertyRepo, log)

	// Background jobs: the sweep runs in the server process so lost queue
	// jobs are recovered even when no worker restart happens.
	schedulerManager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return nil, err
	}
	sweepJob := scheduler.NewTriageSweepJob(ticketRepo, triageProducer, cfg.Triage.StuckThreshold(), log)
	if err := schedulerManager.RegisterTriageSweepJob(sweepJob, cfg.Triage.SweepInterval()); err != nil {
		return nil, err
	}

	c := &Container{
		cfg:       cfg,
		log:       log,
		redis:     redisClient,
		scheduler: schedulerManager,
		publicHandler: ticketHandlers.NewPublicHandler(
			submitTicketUC, getByRefUC, addMessageUC, log,
		),
		ticketHandler: ticketHandlers.NewTicketHandler(
			listTicketsUC, getTicketUC, updateStatusUC, reprocessUC, sendEmailUC, triageHistoryUC, log,
		),
		contractorHandler: contractorHandlers.NewContractorHandler(
			createContractorUC, updateContractorUC, deleteContractorUC, getContractorUC, listContractorsUC, log,
		),
		propertyHandler: propertyHandlers.NewPropertyHandler(
			createPropertyUC, updatePropertyUC, deletePropertyUC, getPropertyUC, listPropertiesUC, log,
		),
		tenantMiddleware: middleware.NewTenantMiddleware(tenantRepo, log),
	}

	c.engine = c.buildEngine()
	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Start launches background services.
func (c *Container) Start() {
	c.scheduler.Start()
}

// Shutdown stops background services. The HTTP server itself is closed by the
// caller that owns it.
func (c *Container) Shutdown() {
	if err := c.scheduler.Stop(); err != nil {
		c.log.Errorw("failed to stop scheduler", "error", err)
	}
}
