package app

import (
	"fmt"

	"github.com/clubmate/backend/internal/adapters/config"
	"github.com/clubmate/backend/internal/adapters/database/postgres"
	"github.com/clubmate/backend/internal/adapters/payment/stripe"
	"github.com/clubmate/backend/internal/adapters/scheduler"
	"github.com/clubmate/backend/internal/adapters/smtp"
	"github.com/clubmate/backend/internal/domain/bus"
	"github.com/clubmate/backend/internal/domain/command"
	"github.com/clubmate/backend/internal/domain/limits"
	"github.com/clubmate/backend/internal/domain/query"
	"github.com/clubmate/backend/internal/ports/secondary"
	"github.com/clubmate/backend/pkg/logger"
	qr "github.com/clubmate/backend/pkg/qrcode"
)

// serviceProvider wires the object graph lazily, one getter per dependency.
type serviceProvider struct {
	cfg *config.Config

	// Storage layer
	clubRepo         secondary.ClubRepository
	subscriptionRepo secondary.SubscriptionRepository
	invitationRepo   secondary.InvitationRepository
	memberRepo       secondary.MemberRepository
	trainingRepo     secondary.TrainingRepository
	registrationRepo secondary.TrainingRegistrationRepository

	// Collaborators
	payments secondary.PaymentProvider
	mail     secondary.MailClient

	messageBus *bus.Bus
	jobs       *scheduler.Scheduler
}

func newServiceProvider() *serviceProvider {
	return &serviceProvider{
		cfg: config.Get(),
	}
}

func (s *serviceProvider) Cfg() *config.Config {
	return s.cfg
}

func (s *serviceProvider) ClubRepo() secondary.ClubRepository {
	if s.clubRepo == nil {
		s.clubRepo = postgres.NewClubStorage(s.cfg.Database)
	}
	return s.clubRepo
}

func (s *serviceProvider) SubscriptionRepo() secondary.SubscriptionRepository {
	if s.subscriptionRepo == nil {
		s.subscriptionRepo = postgres.NewSubscriptionStorage(s.cfg.Database)
	}
	return s.subscriptionRepo
}

func (s *serviceProvider) InvitationRepo() secondary.InvitationRepository {
	if s.invitationRepo == nil {
		s.invitationRepo = postgres.NewInvitationStorage(s.cfg.Database)
	}
	return s.invitationRepo
}

func (s *serviceProvider) MemberRepo() secondary.MemberRepository {
	if s.memberRepo == nil {
		s.memberRepo = postgres.NewMemberStorage(s.cfg.Database)
	}
	return s.memberRepo
}

func (s *serviceProvider) TrainingRepo() secondary.TrainingRepository {
	if s.trainingRepo == nil {
		s.trainingRepo = postgres.NewTrainingStorage(s.cfg.Database)
	}
	return s.trainingRepo
}

func (s *serviceProvider) RegistrationRepo() secondary.TrainingRegistrationRepository {
	if s.registrationRepo == nil {
		s.registrationRepo = postgres.NewTrainingRegistrationStorage(s.cfg.Database)
	}
	return s.registrationRepo
}

func (s *serviceProvider) Payments() secondary.PaymentProvider {
	if s.payments == nil {
		s.payments = stripe.NewClient(s.cfg.Stripe)
	}
	return s.payments
}

func (s *serviceProvider) Mail() (secondary.MailClient, error) {
	if s.mail == nil {
		mailLogger, err := logger.Named("smtp")
		if err != nil {
			return nil, err
		}
		s.mail = smtp.NewClient(mailLogger, s.cfg.SMTPDialer, s.cfg.MailFrom, s.cfg.MailDomain)
	}
	return s.mail, nil
}

// Bus builds the dispatch tables: every command and query handler is
// registered exactly once.
func (s *serviceProvider) Bus() (*bus.Bus, error) {
	if s.messageBus != nil {
		return s.messageBus, nil
	}

	commandLogger, err := logger.Named("command")
	if err != nil {
		return nil, err
	}
	mail, err := s.Mail()
	if err != nil {
		return nil, err
	}

	b := bus.New()
	clubCache := s.cfg.Redis.Clubs

	trainingLifecycle := command.NewTrainingLifecycleHandler(s.TrainingRepo())
	qrConfig := qr.Default
	qrConfig.LogoPath = s.cfg.LogoPath

	registrations := []error{
		bus.RegisterCommand(b, command.NewCreateClubHandler(s.ClubRepo(), s.MemberRepo()).Handle),
		bus.RegisterCommand(b, command.NewUpdateClubHandler(s.ClubRepo(), clubCache).Handle),
		bus.RegisterCommand(b, command.NewDeleteClubHandler(s.ClubRepo(), clubCache).Handle),
		bus.RegisterCommand(b, command.NewSubscribeHandler(s.ClubRepo(), s.SubscriptionRepo(), s.Payments()).Handle),
		bus.RegisterCommand(b, command.NewUpgradeSubscriptionHandler(s.SubscriptionRepo()).Handle),
		bus.RegisterCommand(b, command.NewCancelSubscriptionHandler(s.SubscriptionRepo(), s.Payments()).Handle),
		bus.RegisterCommand(b, command.NewGenerateInvitationHandler(commandLogger, s.ClubRepo(), s.MemberRepo(), s.InvitationRepo(), mail, s.cfg.JoinLinkBase).Handle),
		bus.RegisterCommand(b, command.NewAcceptInvitationHandler(s.InvitationRepo(), s.MemberRepo()).Handle),
		bus.RegisterCommand(b, command.NewDeleteInvitationHandler(s.InvitationRepo()).Handle),
		bus.RegisterCommand(b, command.NewCleanupInvitationsHandler(commandLogger, s.InvitationRepo()).Handle),
		bus.RegisterCommand(b, command.NewRemoveMemberHandler(s.MemberRepo()).Handle),
		bus.RegisterCommand(b, command.NewCreateTrainingHandler(s.ClubRepo(), s.TrainingRepo()).Handle),
		bus.RegisterCommand(b, trainingLifecycle.HandleStart),
		bus.RegisterCommand(b, trainingLifecycle.HandleComplete),
		bus.RegisterCommand(b, trainingLifecycle.HandleCancel),
		bus.RegisterCommand(b, trainingLifecycle.HandleReschedule),
		bus.RegisterCommand(b, trainingLifecycle.HandleUpdateDetails),
		bus.RegisterCommand(b, command.NewRegisterToTrainingHandler(s.TrainingRepo(), s.RegistrationRepo(), s.MemberRepo()).Handle),
		bus.RegisterCommand(b, command.NewCancelTrainingRegistrationHandler(s.RegistrationRepo()).Handle),

		bus.RegisterQuery(b, query.NewGetClubHandler(s.ClubRepo(), clubCache).Handle),
		bus.RegisterQuery(b, query.NewListClubsHandler(s.ClubRepo()).Handle),
		bus.RegisterQuery(b, query.NewGetSubscriptionHandler(s.SubscriptionRepo()).Handle),
		bus.RegisterQuery(b, query.NewListPlansHandler().Handle),
		bus.RegisterQuery(b, query.NewValidateInvitationHandler(s.InvitationRepo()).Handle),
		bus.RegisterQuery(b, query.NewInvitationQRHandler(s.InvitationRepo(), qrConfig, s.cfg.JoinLinkBase).Handle),
		bus.RegisterQuery(b, query.NewListMembersHandler(s.ClubRepo(), s.MemberRepo()).Handle),
		bus.RegisterQuery(b, query.NewExportMembersHandler(s.ClubRepo(), s.MemberRepo()).Handle),
		bus.RegisterQuery(b, query.NewGetTrainingHandler(s.TrainingRepo(), s.RegistrationRepo()).Handle),
		bus.RegisterQuery(b, query.NewListTrainingsHandler(s.TrainingRepo()).Handle),
		bus.RegisterQuery(b, query.NewTrainingCalendarHandler(s.TrainingRepo()).Handle),
	}
	for _, errRegister := range registrations {
		if errRegister != nil {
			return nil, fmt.Errorf("register handler: %w", errRegister)
		}
	}

	s.messageBus = b
	return s.messageBus, nil
}

// Limits builds the plan-ceiling service. The team counter belongs to the
// layer above; callers inject their own.
func (s *serviceProvider) Limits(teams secondary.TeamCounter) *limits.Service {
	return limits.NewService(s.SubscriptionRepo(), teams)
}

func (s *serviceProvider) Scheduler() (*scheduler.Scheduler, error) {
	if s.jobs == nil {
		schedulerLogger, err := logger.Named("scheduler")
		if err != nil {
			return nil, err
		}
		cleanupLogger, err := logger.Named("command")
		if err != nil {
			return nil, err
		}
		s.jobs = scheduler.New(
			schedulerLogger,
			command.NewCleanupInvitationsHandler(cleanupLogger, s.InvitationRepo()),
		)
	}
	return s.jobs, nil
}
