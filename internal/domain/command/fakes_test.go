package command

import (
	"context"
	"time"

	"github.com/clubmate/backend/internal/domain/common/errorz"
	"github.com/clubmate/backend/internal/domain/entity"
)

// In-memory repository fakes. They mirror the storage contracts closely
// enough for handler tests: not-found lookups return errorz.NotFound and
// entities are copied on the way in and out.

type fakeClubRepo struct {
	clubs map[string]entity.Club
}

func newFakeClubRepo() *fakeClubRepo {
	return &fakeClubRepo{clubs: make(map[string]entity.Club)}
}

func (r *fakeClubRepo) Create(_ context.Context, club *entity.Club) (*entity.Club, error) {
	r.clubs[club.ID] = *club
	stored := r.clubs[club.ID]
	return &stored, nil
}

func (r *fakeClubRepo) Get(_ context.Context, id string) (*entity.Club, error) {
	club, ok := r.clubs[id]
	if !ok {
		return nil, errorz.NotFound("club not found")
	}
	return &club, nil
}

func (r *fakeClubRepo) Update(_ context.Context, club *entity.Club) (*entity.Club, error) {
	if _, ok := r.clubs[club.ID]; !ok {
		return nil, errorz.NotFound("club not found")
	}
	r.clubs[club.ID] = *club
	stored := r.clubs[club.ID]
	return &stored, nil
}

func (r *fakeClubRepo) Delete(_ context.Context, id string) error {
	delete(r.clubs, id)
	return nil
}

func (r *fakeClubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clubs)), nil
}

func (r *fakeClubRepo) GetNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(r.clubs))
	for _, club := range r.clubs {
		names = append(names, club.Name)
	}
	return names, nil
}

func (r *fakeClubRepo) GetWithPagination(_ context.Context, offset, limit int, _ string) ([]entity.Club, error) {
	all := make([]entity.Club, 0, len(r.clubs))
	for _, club := range r.clubs {
		all = append(all, club)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

type fakeMemberRepo struct {
	members map[string]entity.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]entity.Member)}
}

func (r *fakeMemberRepo) Create(_ context.Context, member *entity.Member) (*entity.Member, error) {
	for _, existing := range r.members {
		if existing.ClubID == member.ClubID && existing.UserID == member.UserID && existing.IsActive && member.IsActive {
			return nil, errorz.Conflict("member already exists")
		}
	}
	r.members[member.ID] = *member
	stored := r.members[member.ID]
	return &stored, nil
}

func (r *fakeMemberRepo) Get(_ context.Context, id string) (*entity.Member, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, errorz.NotFound("member not found")
	}
	return &member, nil
}

func (r *fakeMemberRepo) GetActive(_ context.Context, clubID, userID string) (*entity.Member, error) {
	for _, member := range r.members {
		if member.ClubID == clubID && member.UserID == userID && member.IsActive {
			found := member
			return &found, nil
		}
	}
	return nil, errorz.NotFound("member not found")
}

func (r *fakeMemberRepo) GetActiveByClubID(_ context.Context, clubID string) ([]entity.Member, error) {
	var active []entity.Member
	for _, member := range r.members {
		if member.ClubID == clubID && member.IsActive {
			active = append(active, member)
		}
	}
	return active, nil
}

func (r *fakeMemberRepo) Update(_ context.Context, member *entity.Member) (*entity.Member, error) {
	if _, ok := r.members[member.ID]; !ok {
		return nil, errorz.NotFound("member not found")
	}
	r.members[member.ID] = *member
	stored := r.members[member.ID]
	return &stored, nil
}

func (r *fakeMemberRepo) CountActiveByClubID(_ context.Context, clubID string) (int64, error) {
	var count int64
	for _, member := range r.members {
		if member.ClubID == clubID && member.IsActive {
			count++
		}
	}
	return count, nil
}

type fakeSubscriptionRepo struct {
	subscriptions []entity.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{}
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, subscription *entity.Subscription) (*entity.Subscription, error) {
	subscription.CreatedAt = time.Now()
	r.subscriptions = append(r.subscriptions, *subscription)
	stored := r.subscriptions[len(r.subscriptions)-1]
	return &stored, nil
}

func (r *fakeSubscriptionRepo) Get(_ context.Context, id string) (*entity.Subscription, error) {
	for _, subscription := range r.subscriptions {
		if subscription.ID == id {
			found := subscription
			return &found, nil
		}
	}
	return nil, errorz.NotFound("subscription not found")
}

// GetByClubID returns the most recently created row, matching the storage
// layer's created_at ordering.
func (r *fakeSubscriptionRepo) GetByClubID(_ context.Context, clubID string) (*entity.Subscription, error) {
	var latest *entity.Subscription
	for i := range r.subscriptions {
		subscription := r.subscriptions[i]
		if subscription.ClubID != clubID {
			continue
		}
		if latest == nil || !subscription.CreatedAt.Before(latest.CreatedAt) {
			found := subscription
			latest = &found
		}
	}
	if latest == nil {
		return nil, errorz.NotFound("subscription not found")
	}
	return latest, nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, subscription *entity.Subscription) (*entity.Subscription, error) {
	for i := range r.subscriptions {
		if r.subscriptions[i].ID == subscription.ID {
			r.subscriptions[i] = *subscription
			stored := r.subscriptions[i]
			return &stored, nil
		}
	}
	return nil, errorz.NotFound("subscription not found")
}

type fakeInvitationRepo struct {
	invitations map[string]entity.Invitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[string]entity.Invitation)}
}

func (r *fakeInvitationRepo) Create(_ context.Context, invitation *entity.Invitation) (*entity.Invitation, error) {
	for _, existing := range r.invitations {
		if existing.Token == invitation.Token {
			return nil, errorz.Conflict("invitation token already exists")
		}
	}
	r.invitations[invitation.ID] = *invitation
	stored := r.invitations[invitation.ID]
	return &stored, nil
}

func (r *fakeInvitationRepo) GetByToken(_ context.Context, token string) (*entity.Invitation, error) {
	for _, invitation := range r.invitations {
		if invitation.Token == token {
			found := invitation
			return &found, nil
		}
	}
	return nil, errorz.NotFound("invitation not found")
}

func (r *fakeInvitationRepo) GetByClubID(_ context.Context, clubID string) ([]entity.Invitation, error) {
	var result []entity.Invitation
	for _, invitation := range r.invitations {
		if invitation.ClubID == clubID {
			result = append(result, invitation)
		}
	}
	return result, nil
}

func (r *fakeInvitationRepo) Update(_ context.Context, invitation *entity.Invitation) (*entity.Invitation, error) {
	if _, ok := r.invitations[invitation.ID]; !ok {
		return nil, errorz.NotFound("invitation not found")
	}
	r.invitations[invitation.ID] = *invitation
	stored := r.invitations[invitation.ID]
	return &stored, nil
}

func (r *fakeInvitationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.invitations[id]; !ok {
		return errorz.NotFound("invitation not found")
	}
	delete(r.invitations, id)
	return nil
}

func (r *fakeInvitationRepo) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	var deleted int64
	for id, invitation := range r.invitations {
		if invitation.ExpiresAt.Before(before) && invitation.UsedAt == nil {
			delete(r.invitations, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeTrainingRepo struct {
	trainings map[string]entity.Training
}

func newFakeTrainingRepo() *fakeTrainingRepo {
	return &fakeTrainingRepo{trainings: make(map[string]entity.Training)}
}

func (r *fakeTrainingRepo) Create(_ context.Context, training *entity.Training) (*entity.Training, error) {
	r.trainings[training.ID] = *training
	stored := r.trainings[training.ID]
	return &stored, nil
}

func (r *fakeTrainingRepo) Get(_ context.Context, id string) (*entity.Training, error) {
	training, ok := r.trainings[id]
	if !ok {
		return nil, errorz.NotFound("training not found")
	}
	return &training, nil
}

func (r *fakeTrainingRepo) Update(_ context.Context, training *entity.Training) (*entity.Training, error) {
	if _, ok := r.trainings[training.ID]; !ok {
		return nil, errorz.NotFound("training not found")
	}
	r.trainings[training.ID] = *training
	stored := r.trainings[training.ID]
	return &stored, nil
}

func (r *fakeTrainingRepo) GetByClubID(_ context.Context, clubID string) ([]entity.Training, error) {
	var result []entity.Training
	for _, training := range r.trainings {
		if training.ClubID == clubID {
			result = append(result, training)
		}
	}
	return result, nil
}

func (r *fakeTrainingRepo) GetScheduledByClubID(_ context.Context, clubID string, from time.Time) ([]entity.Training, error) {
	var result []entity.Training
	for _, training := range r.trainings {
		if training.ClubID == clubID && training.Status == entity.TrainingScheduled && !training.ScheduledAt.Before(from) {
			result = append(result, training)
		}
	}
	return result, nil
}

type fakeRegistrationRepo struct {
	registrations map[string]entity.TrainingRegistration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{registrations: make(map[string]entity.TrainingRegistration)}
}

func (r *fakeRegistrationRepo) Create(_ context.Context, registration *entity.TrainingRegistration) (*entity.TrainingRegistration, error) {
	for _, existing := range r.registrations {
		if existing.TrainingID == registration.TrainingID && existing.UserID == registration.UserID && existing.IsActive() {
			return nil, errorz.Conflict("registration already exists")
		}
	}
	r.registrations[registration.ID] = *registration
	stored := r.registrations[registration.ID]
	return &stored, nil
}

func (r *fakeRegistrationRepo) GetActive(_ context.Context, trainingID, userID string) (*entity.TrainingRegistration, error) {
	for _, registration := range r.registrations {
		if registration.TrainingID == trainingID && registration.UserID == userID && registration.IsActive() {
			found := registration
			return &found, nil
		}
	}
	return nil, errorz.NotFound("registration not found")
}

func (r *fakeRegistrationRepo) GetByTrainingID(_ context.Context, trainingID string) ([]entity.TrainingRegistration, error) {
	var result []entity.TrainingRegistration
	for _, registration := range r.registrations {
		if registration.TrainingID == trainingID {
			result = append(result, registration)
		}
	}
	return result, nil
}

func (r *fakeRegistrationRepo) Update(_ context.Context, registration *entity.TrainingRegistration) (*entity.TrainingRegistration, error) {
	if _, ok := r.registrations[registration.ID]; !ok {
		return nil, errorz.NotFound("registration not found")
	}
	r.registrations[registration.ID] = *registration
	stored := r.registrations[registration.ID]
	return &stored, nil
}

func (r *fakeRegistrationRepo) CountActiveByTrainingID(_ context.Context, trainingID string) (int64, error) {
	var count int64
	for _, registration := range r.registrations {
		if registration.TrainingID == trainingID && registration.IsActive() {
			count++
		}
	}
	return count, nil
}

type fakePayments struct {
	customersCreated int
	checkoutOpened   int
	portalOpened     int
}

func (p *fakePayments) CreateCustomer(_ context.Context, _ string) (string, error) {
	p.customersCreated++
	return "cus_fake", nil
}

func (p *fakePayments) CreateCheckoutSession(_ context.Context, customerID, planID string) (string, error) {
	p.checkoutOpened++
	return "https://checkout.example.com/" + planID, nil
}

func (p *fakePayments) CreateBillingPortalSession(_ context.Context, customerID, _ string) (string, error) {
	p.portalOpened++
	return "https://portal.example.com/" + customerID, nil
}

func (p *fakePayments) VerifyWebhook(_ []byte, _ string) error {
	return nil
}

type fakeMail struct {
	sent []string
}

func (m *fakeMail) SendInvitationEmail(to, _, _ string) {
	m.sent = append(m.sent, to)
}
