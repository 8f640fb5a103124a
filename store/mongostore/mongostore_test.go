package mongostore

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/essaydraft-api/models"
	"github.com/andrewpaige1/essaydraft-api/store"
)

// These tests need a running MongoDB, e.g.
//
//	MONGODB_TEST_URI=mongodb://localhost:27017 go test ./store/mongostore/
func newTestStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := "essaydraft_test_" + strings.ToLower(strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	s, err := Open(ctx, uri, db)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		_ = s.users.Database().Drop(ctx)
		_ = s.Close(ctx)
	})
	return s
}

func TestMongoStore_UserLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := models.NewUser("Ada", "Lovelace", "ada@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, s.CreateUser(ctx, u))

	dup, err := models.NewUser("Ada", "Again", "ada@example.com", "hash")
	require.NoError(t, err)
	assert.ErrorIs(t, s.CreateUser(ctx, dup), store.ErrConflict)

	got, err := s.UserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	require.NoError(t, s.UpdateDetail(ctx, u.ID, models.FieldLocation, "X"))
	require.NoError(t, s.UpdateDetail(ctx, u.ID, models.FieldHobbies, "Y"))
	got, err = s.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Details.Location)
	assert.Equal(t, "Y", got.Details.Hobbies)

	assert.ErrorIs(t, s.UpdateDetail(ctx, "missing", models.FieldLocation, "X"), store.ErrNotFound)
}

func TestMongoStore_CollegesAndQuestions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := models.NewUser("Ada", "Lovelace", "ada@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, s.CreateUser(ctx, u))

	mit, err := models.NewCollege("MIT")
	require.NoError(t, err)
	yale, err := models.NewCollege("Yale")
	require.NoError(t, err)

	_, err = s.AddCollege(ctx, u.ID, mit)
	require.NoError(t, err)
	colleges, err := s.AddCollege(ctx, u.ID, yale)
	require.NoError(t, err)
	require.Len(t, colleges, 2)

	q, err := models.NewQuestion("Why this school?")
	require.NoError(t, err)
	questions, err := s.AddQuestion(ctx, u.ID, mit.ID, q)
	require.NoError(t, err)
	require.Len(t, questions, 1)

	questions, err = s.UpdateAnswer(ctx, u.ID, mit.ID, q.ID, "Because...")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Because...", questions[0].Answer)

	_, err = s.UpdateAnswer(ctx, u.ID, yale.ID, q.ID, "x")
	assert.ErrorIs(t, err, store.ErrNotFound)

	college, err := s.College(ctx, u.ID, mit.ID)
	require.NoError(t, err)
	assert.Equal(t, "MIT", college.CollegeName)

	colleges, err = s.DeleteCollege(ctx, u.ID, mit.ID)
	require.NoError(t, err)
	require.Len(t, colleges, 1)
	assert.Equal(t, yale.ID, colleges[0].ID)

	_, err = s.DeleteCollege(ctx, u.ID, mit.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
