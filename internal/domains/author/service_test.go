package author

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub-backend/internal/callable"
)

type fakeRepository struct {
	existing  map[string]bool
	created   []string
	existsErr error
	createErr error
}

func (f *fakeRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existing[name], nil
}

func (f *fakeRepository) Create(_ context.Context, name string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, name)
	return "author-1", nil
}

var admin = &callable.Identity{Subject: "u1", Admin: true}

func TestCreate(t *testing.T) {
	repo := &fakeRepository{existing: map[string]bool{}}
	svc := NewService(repo)

	result, err := svc.Create(context.Background(), admin, map[string]any{"authorName": "Tolkien"})
	require.NoError(t, err)

	created, ok := result.(*CreateResult)
	require.True(t, ok)
	assert.Equal(t, "author-1", created.AuthorID)
	assert.Equal(t, []string{"Tolkien"}, repo.created)
}

func TestCreateDuplicateName(t *testing.T) {
	repo := &fakeRepository{existing: map[string]bool{"Tolkien": true}}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), admin, map[string]any{"authorName": "Tolkien"})
	require.Error(t, err)
	assert.Equal(t, callable.KindAlreadyExists, callable.KindOf(err))
	assert.Empty(t, repo.created)
}

func TestCreateRequiresAdmin(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), nil, map[string]any{"authorName": "Tolkien"})
	assert.Equal(t, callable.KindUnauthenticated, callable.KindOf(err))

	_, err = svc.Create(context.Background(), &callable.Identity{Subject: "u2"}, map[string]any{"authorName": "Tolkien"})
	assert.Equal(t, callable.KindPermissionDenied, callable.KindOf(err))
}

func TestCreateInvalidPayload(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo)

	tests := []map[string]any{
		{},
		{"authorName": float64(3)},
		{"authorName": "Tolkien", "extra": "x"},
		{"name": "Tolkien"},
	}
	for _, payload := range tests {
		_, err := svc.Create(context.Background(), admin, payload)
		assert.Equal(t, callable.KindInvalidArgument, callable.KindOf(err))
	}
	assert.Empty(t, repo.created)
}

func TestCreateRepositoryFailure(t *testing.T) {
	repo := &fakeRepository{existsErr: errors.New("db down")}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), admin, map[string]any{"authorName": "Tolkien"})
	require.Error(t, err)
	assert.Equal(t, callable.KindInternal, callable.KindOf(err))
}
