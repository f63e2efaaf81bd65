package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

type stubContactRepo struct {
	rows      map[string]*domain.ContactSubmission
	insertErr error
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{rows: make(map[string]*domain.ContactSubmission)}
}

func (r *stubContactRepo) Insert(_ context.Context, c *domain.ContactSubmission) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *c
	r.rows[c.ID] = &clone
	return nil
}

func (r *stubContactRepo) List(_ context.Context) ([]*domain.ContactSubmission, error) {
	var out []*domain.ContactSubmission
	for _, c := range r.rows {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubContactRepo) Resolve(_ context.Context, id string) error {
	c, ok := r.rows[id]
	if !ok {
		return domain.ErrContactNotFound
	}
	c.IsResolved = true
	return nil
}

func validContactInput() ports.SubmitContactInput {
	return ports.SubmitContactInput{
		Name:    "Dana Wright",
		Email:   "dana@example.com",
		Subject: "Quote request",
		Message: "Looking for FF&E sourcing on a 40-room hotel.",
	}
}

func TestContactService_Submit_CreatesOneRow(t *testing.T) {
	repo := newStubContactRepo()
	queue := &stubQueue{}
	svc := NewContactService(repo, queue, "ops@atelierworks.example.com", zerolog.Nop())

	sub, err := svc.Submit(context.Background(), validContactInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.ID == "" {
		t.Error("expected generated id")
	}
	if sub.IsResolved {
		t.Error("new submission must be unresolved")
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(repo.rows))
	}
	stored := repo.rows[sub.ID]
	if stored.Name != "Dana Wright" || stored.IsResolved {
		t.Errorf("unexpected stored row: %+v", stored)
	}
}

func TestContactService_Submit_UniqueIDs(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo, &stubQueue{}, "", zerolog.Nop())

	first, _ := svc.Submit(context.Background(), validContactInput())
	second, _ := svc.Submit(context.Background(), validContactInput())
	if first.ID == second.ID {
		t.Fatalf("ids must be unique, both were %s", first.ID)
	}
}

func TestContactService_Submit_NotifiesInbox(t *testing.T) {
	repo := newStubContactRepo()
	queue := &stubQueue{}
	svc := NewContactService(repo, queue, "ops@atelierworks.example.com", zerolog.Nop())

	sub, err := svc.Submit(context.Background(), validContactInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(queue.jobs))
	}
	job := queue.jobs[0]
	if job.Kind != ports.NotifyContactReceived || job.EntityID != sub.ID {
		t.Errorf("unexpected job: %+v", job)
	}
	if job.Recipient != "ops@atelierworks.example.com" {
		t.Errorf("unexpected recipient: %s", job.Recipient)
	}
}

func TestContactService_Submit_RepoError(t *testing.T) {
	repo := newStubContactRepo()
	repo.insertErr = errors.New("db unavailable")
	queue := &stubQueue{}
	svc := NewContactService(repo, queue, "ops@atelierworks.example.com", zerolog.Nop())

	if _, err := svc.Submit(context.Background(), validContactInput()); err == nil {
		t.Fatal("expected error when repo fails")
	}
	if len(queue.jobs) != 0 {
		t.Error("no notification may be enqueued when the insert fails")
	}
}

func TestContactService_Resolve_NotFound(t *testing.T) {
	svc := NewContactService(newStubContactRepo(), &stubQueue{}, "", zerolog.Nop())

	if err := svc.Resolve(context.Background(), "ghost"); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}
