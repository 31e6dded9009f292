package comment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub-backend/internal/callable"
	"bookclub-backend/internal/domains/profile"
)

type fakeRepository struct {
	created *Comment
	err     error
}

func (f *fakeRepository) Create(_ context.Context, cm *Comment) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = cm
	return "comment-1", nil
}

type fakeResolver struct {
	usernames map[string]string
	err       error
}

func (f *fakeResolver) FindUsernameByUserID(_ context.Context, userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	username, ok := f.usernames[userID]
	if !ok {
		return "", profile.ErrNoProfile
	}
	return username, nil
}

func TestPost(t *testing.T) {
	repo := &fakeRepository{}
	resolver := &fakeResolver{usernames: map[string]string{"u1": "bilbo"}}
	svc := NewService(repo, resolver)

	posted := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	svc.now = func() time.Time { return posted }

	result, err := svc.Post(context.Background(), &callable.Identity{Subject: "u1"}, map[string]any{
		"bookId": "book-9",
		"text":   "Loved it.",
	})
	require.NoError(t, err)

	created, ok := result.(*PostResult)
	require.True(t, ok)
	assert.Equal(t, "comment-1", created.CommentID)

	require.NotNil(t, repo.created)
	// The stored username is the profile document id, not the auth subject.
	assert.Equal(t, "bilbo", repo.created.Username)
	assert.Equal(t, "book-9", repo.created.BookID)
	assert.Equal(t, "Loved it.", repo.created.Text)
	assert.Equal(t, posted, repo.created.DateCreated)
}

func TestPostRequiresSignIn(t *testing.T) {
	svc := NewService(&fakeRepository{}, &fakeResolver{})

	_, err := svc.Post(context.Background(), nil, map[string]any{"bookId": "b", "text": "t"})
	assert.Equal(t, callable.KindUnauthenticated, callable.KindOf(err))
}

func TestPostWithoutProfile(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo, &fakeResolver{usernames: map[string]string{}})

	_, err := svc.Post(context.Background(), &callable.Identity{Subject: "u1"}, map[string]any{
		"bookId": "book-9",
		"text":   "Loved it.",
	})
	require.Error(t, err)
	assert.Equal(t, callable.KindNotFound, callable.KindOf(err))
	assert.Nil(t, repo.created)
}

func TestPostInvalidPayload(t *testing.T) {
	svc := NewService(&fakeRepository{}, &fakeResolver{usernames: map[string]string{"u1": "bilbo"}})

	tests := []map[string]any{
		{"bookId": "book-9"},
		{"bookId": "book-9", "text": "x", "extra": true},
		{"bookId": float64(9), "text": "x"},
	}
	for _, payload := range tests {
		_, err := svc.Post(context.Background(), &callable.Identity{Subject: "u1"}, payload)
		assert.Equal(t, callable.KindInvalidArgument, callable.KindOf(err))
	}
}

func TestPostResolverFailure(t *testing.T) {
	svc := NewService(&fakeRepository{}, &fakeResolver{err: errors.New("db down")})

	_, err := svc.Post(context.Background(), &callable.Identity{Subject: "u1"}, map[string]any{
		"bookId": "book-9",
		"text":   "Loved it.",
	})
	require.Error(t, err)
	assert.Equal(t, callable.KindInternal, callable.KindOf(err))
}
