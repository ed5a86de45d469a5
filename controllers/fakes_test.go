package controllers

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jeil-marcom/site_end/mailer"
	"github.com/jeil-marcom/site_end/models"
	"github.com/jeil-marcom/site_end/repository"
)

// fakeContactStore is an in-memory ContactStore.
type fakeContactStore struct {
	mu        sync.Mutex
	docs      map[string]*models.ContactSubmission
	createErr error
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{docs: map[string]*models.ContactSubmission{}}
}

func (s *fakeContactStore) Create(_ context.Context, in models.ContactInput, visitorIP string) (*models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	if visitorIP == "" {
		visitorIP = "Unknown"
	}
	sub := &models.ContactSubmission{
		ID:             primitive.NewObjectID(),
		Name:           in.Name,
		Email:          in.Email,
		Company:        in.Company,
		Subject:        in.Subject,
		Message:        in.Message,
		VisitorIP:      visitorIP,
		FollowupStatus: models.StatusPending,
		IsSpam:         false,
		CreatedAt:      time.Now(),
	}
	s.docs[sub.ID.Hex()] = sub
	return sub, nil
}

func (s *fakeContactStore) ListAll(context.Context) ([]models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ContactSubmission, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeContactStore) GetByID(_ context.Context, id string) (*models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (s *fakeContactStore) UpdateStatus(_ context.Context, id string, in models.StatusUpdateInput) (*models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if in.FollowupStatus != nil {
		doc.FollowupStatus = *in.FollowupStatus
	}
	if in.IsSpam != nil {
		doc.IsSpam = *in.IsSpam
	}
	copied := *doc
	return &copied, nil
}

func (s *fakeContactStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *fakeContactStore) CountByStatus(context.Context) (*models.SubmissionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &models.SubmissionStats{}
	for _, d := range s.docs {
		stats.Total++
		switch d.FollowupStatus {
		case models.StatusPending:
			stats.Pending++
		case models.StatusContacted:
			stats.Contacted++
		case models.StatusNoResponse:
			stats.NoResponse++
		case models.StatusRead:
			stats.Read++
		}
	}
	return stats, nil
}

// fakeCatalogueStore is an in-memory CatalogueStore.
type fakeCatalogueStore struct {
	mu        sync.Mutex
	docs      map[string]*models.CatalogueSubmission
	createErr error
}

func newFakeCatalogueStore() *fakeCatalogueStore {
	return &fakeCatalogueStore{docs: map[string]*models.CatalogueSubmission{}}
}

func (s *fakeCatalogueStore) Create(_ context.Context, in models.CatalogueInput, visitorIP string) (*models.CatalogueSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	if visitorIP == "" {
		visitorIP = "Unknown"
	}
	sub := &models.CatalogueSubmission{
		ID:             primitive.NewObjectID(),
		Name:           in.Name,
		CompanyName:    in.CompanyName,
		Email:          in.Email,
		ContactNumber:  in.ContactNumber,
		City:           in.City,
		State:          in.State,
		Country:        in.Country,
		ProductName:    in.ProductName,
		URL:            in.URL,
		VisitorIP:      visitorIP,
		FollowupStatus: models.StatusPending,
		IsSpam:         false,
		CreatedAt:      time.Now(),
	}
	s.docs[sub.ID.Hex()] = sub
	return sub, nil
}

func (s *fakeCatalogueStore) ListAll(context.Context) ([]models.CatalogueSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CatalogueSubmission, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeCatalogueStore) GetByID(_ context.Context, id string) (*models.CatalogueSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (s *fakeCatalogueStore) UpdateStatus(_ context.Context, id string, in models.StatusUpdateInput) (*models.CatalogueSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if in.FollowupStatus != nil {
		doc.FollowupStatus = *in.FollowupStatus
	}
	if in.IsSpam != nil {
		doc.IsSpam = *in.IsSpam
	}
	copied := *doc
	return &copied, nil
}

func (s *fakeCatalogueStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *fakeCatalogueStore) CountByStatus(context.Context) (*models.SubmissionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &models.SubmissionStats{}
	for _, d := range s.docs {
		stats.Total++
		switch d.FollowupStatus {
		case models.StatusPending:
			stats.Pending++
		case models.StatusContacted:
			stats.Contacted++
		case models.StatusNoResponse:
			stats.NoResponse++
		case models.StatusRead:
			stats.Read++
		}
	}
	return stats, nil
}

// fakeSender records dispatched messages and optionally fails every send.
type fakeSender struct {
	mu      sync.Mutex
	sent    []mailer.Message
	sendErr error
}

func (s *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *fakeSender) messages() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mailer.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

// fakeAdminStore serves a fixed set of accounts keyed by email.
type fakeAdminStore struct {
	users map[string]*models.AdminUser
}

func (s *fakeAdminStore) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}
