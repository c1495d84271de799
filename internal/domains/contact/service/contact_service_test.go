package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared"
)

type fakeRepo struct {
	inserted []model.ContactMessage
	nextID   int64
	listed   []model.ContactMessage
	lastFilter model.ListFilter
}

func (r *fakeRepo) Insert(ctx context.Context, m *model.ContactMessage) (int64, error) {
	r.nextID++
	r.inserted = append(r.inserted, *m)
	return r.nextID, nil
}

func (r *fakeRepo) List(ctx context.Context, filter model.ListFilter) ([]model.ContactMessage, error) {
	r.lastFilter = filter
	return r.listed, nil
}

func (r *fakeRepo) MarkRead(ctx context.Context, id int64) error { return nil }

type fakeDirectory struct {
	name  string
	email string
	slug  string
	err   error
}

func (d *fakeDirectory) FindResponsibleEmail(ctx context.Context, slug string) (string, string, error) {
	return d.name, d.email, d.err
}

func (d *fakeDirectory) FindSlugByUserID(ctx context.Context, userID int64) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.slug, nil
}

type fakeQueue struct {
	tasks []*asynq.Task
	err   error
}

func (q *fakeQueue) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func submitReq() *model.SubmitRequest {
	return &model.SubmitRequest{
		SlugName: "dhaka5",
		Name:     "A Visitor",
		Email:    "visitor@example.com",
		Subject:  "Road conditions",
		Message:  "The main road needs repair.",
	}
}

func TestSubmit_StoresAndEnqueues(t *testing.T) {
	repo := &fakeRepo{}
	queue := &fakeQueue{}
	svc := NewContactService(repo, &fakeDirectory{name: "Test Candidate", email: "cand@example.com"}, queue)

	err := svc.Submit(context.Background(), submitReq())
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "dhaka5", repo.inserted[0].CandidateSlug)

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, shared.TypeContactNotification, queue.tasks[0].Type())

	var payload shared.ContactNotificationPayload
	require.NoError(t, json.Unmarshal(queue.tasks[0].Payload(), &payload))
	assert.Equal(t, "cand@example.com", payload.To)
	assert.Equal(t, "visitor@example.com", payload.SenderEmail)
}

func TestSubmit_EnqueueFailureIsNonFatal(t *testing.T) {
	repo := &fakeRepo{}
	queue := &fakeQueue{err: errors.New("redis down")}
	svc := NewContactService(repo, &fakeDirectory{name: "Test Candidate", email: "cand@example.com"}, queue)

	err := svc.Submit(context.Background(), submitReq())
	assert.NoError(t, err)
	assert.Len(t, repo.inserted, 1)
}

func TestSubmit_NoCandidateEmailSkipsNotification(t *testing.T) {
	repo := &fakeRepo{}
	queue := &fakeQueue{}
	svc := NewContactService(repo, &fakeDirectory{name: "Test Candidate", email: ""}, queue)

	require.NoError(t, svc.Submit(context.Background(), submitReq()))
	assert.Len(t, repo.inserted, 1)
	assert.Empty(t, queue.tasks)
}

func TestSubmit_UnknownSlugStillStores(t *testing.T) {
	repo := &fakeRepo{}
	queue := &fakeQueue{}
	svc := NewContactService(repo, &fakeDirectory{err: candidate.ErrCandidateNotFound}, queue)

	require.NoError(t, svc.Submit(context.Background(), submitReq()))
	assert.Len(t, repo.inserted, 1)
	assert.Empty(t, queue.tasks)
}

func TestListMine_ScopesToCallerSlug(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewContactService(repo, &fakeDirectory{slug: "dhaka5"}, &fakeQueue{})

	_, err := svc.ListMine(context.Background(), 42, "unread")
	require.NoError(t, err)
	assert.Equal(t, model.ListFilter{Status: "unread", Slug: "dhaka5"}, repo.lastFilter)
}
