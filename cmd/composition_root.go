package cmd

import (
	"log/slog"
	"os"
	"time"

	httpin "booking/internal/adapters/in/http"
	"booking/internal/adapters/out/eligibility"
	"booking/internal/adapters/out/notify/push"
	"booking/internal/adapters/out/notify/sms"
	"booking/internal/adapters/out/postgres"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
	"booking/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	dispatcher  services.NotificationDispatcher
	eligibility ports.EligibilityProvider
	logger      *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB) (CompositionRoot, error) {
	timeout := time.Duration(cfg.NotifyTimeoutSecs) * time.Second

	pushClient, err := push.NewClient(push.Config{
		WebhookURL: cfg.PushWebhookURL,
		Timeout:    timeout,
		RetryLimit: cfg.NotifyRetryLimit,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	smsClient, err := sms.NewClient(sms.Config{
		EndpointURL: cfg.SMSEndpointURL,
		Timeout:     timeout,
		RetryLimit:  cfg.NotifyRetryLimit,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	eligibilityClient, err := eligibility.NewClient(eligibility.Config{
		BaseURL: cfg.EligibilityBaseURL,
		Timeout: timeout,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher:  services.NewNotificationDispatcher(pushClient, smsClient, timeout),
		eligibility: eligibilityClient,
		logger:      slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory(), c.dispatcher, c.eligibility, c.logger)
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() commands.UpdateJobCommandHandler {
	return commands.NewUpdateJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateStoreJobEmailCommandHandler() commands.StoreJobEmailCommandHandler {
	return commands.NewStoreJobEmailCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.jobUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateAcceptJobByIDCommandHandler() commands.AcceptJobByIDCommandHandler {
	return commands.NewAcceptJobByIDCommandHandler(c.CreateAcceptJobCommandHandler())
}

func (c *CompositionRoot) CreateStartJobCommandHandler() commands.StartJobCommandHandler {
	return commands.NewStartJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateEndJobCommandHandler() commands.EndJobCommandHandler {
	return commands.NewEndJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateCustomerNoShowCommandHandler() commands.CustomerNoShowCommandHandler {
	return commands.NewCustomerNoShowCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateReopenJobCommandHandler() commands.ReopenJobCommandHandler {
	return commands.NewReopenJobCommandHandler(c.jobUoWFactory(), c.dispatcher, c.eligibility, c.logger)
}

func (c *CompositionRoot) CreateDistanceFeedCommandHandler() commands.DistanceFeedCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDistanceFeedCommandHandler(f)
}

func (c *CompositionRoot) CreateResendNotificationsCommandHandler() commands.ResendNotificationsCommandHandler {
	return commands.NewResendNotificationsCommandHandler(c.jobUoWFactory(), c.dispatcher, c.eligibility)
}

func (c *CompositionRoot) CreateRebroadcastPendingJobsCommandHandler() commands.RebroadcastPendingJobsCommandHandler {
	return commands.NewRebroadcastPendingJobsCommandHandler(c.jobUoWFactory(), c.dispatcher, c.eligibility, c.logger)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserJobsQueryHandler() queries.GetUserJobsQueryHandler {
	return queries.NewGetUserJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllJobsQueryHandler() queries.GetAllJobsQueryHandler {
	return queries.NewGetAllJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobsHistoryQueryHandler() queries.GetJobsHistoryQueryHandler {
	return queries.NewGetJobsHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPotentialJobsQueryHandler() queries.GetPotentialJobsQueryHandler {
	return queries.NewGetPotentialJobsQueryHandler(c.gormDB, c.eligibility)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateJob:           c.CreateCreateJobCommandHandler(),
		UpdateJob:           c.CreateUpdateJobCommandHandler(),
		StoreJobEmail:       c.CreateStoreJobEmailCommandHandler(),
		AcceptJob:           c.CreateAcceptJobCommandHandler(),
		AcceptJobByID:       c.CreateAcceptJobByIDCommandHandler(),
		StartJob:            c.CreateStartJobCommandHandler(),
		CancelJob:           c.CreateCancelJobCommandHandler(),
		EndJob:              c.CreateEndJobCommandHandler(),
		CustomerNoShow:      c.CreateCustomerNoShowCommandHandler(),
		ReopenJob:           c.CreateReopenJobCommandHandler(),
		DistanceFeed:        c.CreateDistanceFeedCommandHandler(),
		ResendNotifications: c.CreateResendNotificationsCommandHandler(),
		GetJob:              c.CreateGetJobQueryHandler(),
		GetUserJobs:         c.CreateGetUserJobsQueryHandler(),
		GetAllJobs:          c.CreateGetAllJobsQueryHandler(),
		GetJobsHistory:      c.CreateGetJobsHistoryQueryHandler(),
		GetPotentialJobs:    c.CreateGetPotentialJobsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRebroadcastPendingJobsCommandHandler(), c.logger)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
