package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/events"
)

// In-memory repository fakes. They reproduce the document store's observable
// behavior: pgx.ErrNoRows on misses, case-insensitive email lookup, values
// copied on read so callers cannot mutate stored state.

type fakeTicketRepo struct {
	tickets map[string]domain.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]domain.Ticket)}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ticket, nil
}

func (r *fakeTicketRepo) ListAll(_ context.Context) ([]domain.Ticket, error) {
	out := make([]domain.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByUser(_ context.Context, userID string) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, t := range r.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListActiveAdmins(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Role == domain.RoleAdmin && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeRegistrationRepo struct {
	requests map[string]domain.RegistrationRequest
	users    *fakeUserRepo
}

func newFakeRegistrationRepo(users *fakeUserRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		requests: make(map[string]domain.RegistrationRequest),
		users:    users,
	}
}

func (r *fakeRegistrationRepo) CreatePending(_ context.Context, request *domain.RegistrationRequest) error {
	r.requests[request.ID] = *request
	return nil
}

func (r *fakeRegistrationRepo) Update(_ context.Context, request *domain.RegistrationRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.requests[request.ID] = *request
	return nil
}

func (r *fakeRegistrationRepo) GetByID(_ context.Context, id string) (*domain.RegistrationRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &request, nil
}

func (r *fakeRegistrationRepo) HasPendingForEmail(_ context.Context, email string) (bool, error) {
	for _, request := range r.requests {
		if strings.EqualFold(request.Email, email) && request.Status == domain.RegistrationPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRegistrationRepo) ListAll(_ context.Context) ([]domain.RegistrationRequest, error) {
	out := make([]domain.RegistrationRequest, 0, len(r.requests))
	for _, request := range r.requests {
		out = append(out, request)
	}
	return out, nil
}

func (r *fakeRegistrationRepo) ListPending(_ context.Context) ([]domain.RegistrationRequest, error) {
	var out []domain.RegistrationRequest
	for _, request := range r.requests {
		if request.Status == domain.RegistrationPending {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeRegistrationRepo) Approve(ctx context.Context, request *domain.RegistrationRequest, user *domain.User) error {
	if err := r.users.Create(ctx, user); err != nil {
		return err
	}
	return r.Update(ctx, request)
}

type fakeSettingsRepo struct {
	docs map[string]any
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{docs: make(map[string]any)}
}

func (r *fakeSettingsRepo) Get(_ context.Context, key string, dest any) error {
	doc, ok := r.docs[key]
	if !ok {
		return pgx.ErrNoRows
	}
	switch d := dest.(type) {
	case *domain.CalendarConfig:
		*d = doc.(domain.CalendarConfig)
	case *domain.LandingContent:
		*d = doc.(domain.LandingContent)
	case *domain.SEOConfig:
		*d = doc.(domain.SEOConfig)
	}
	return nil
}

func (r *fakeSettingsRepo) Merge(_ context.Context, key string, doc any) error {
	r.docs[key] = doc
	return nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) byType(eventType events.EventType) []events.Event {
	var out []events.Event
	for _, e := range d.published {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
