package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/models"
	"taskhub/repositories"
)

func TestTodoServiceScoping(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTodoService(repositories.NewTodoRepository(db))

	owner := createTestUser(t, db, "owner", "password", models.RoleUser)
	other := createTestUser(t, db, "other", "password", models.RoleUser)
	admin := createTestUser(t, db, "boss", "password", models.RoleAdmin)

	ownTodo, err := svc.Create(asIdentity(owner), &TodoInput{
		Title: "Mine", Description: "belongs to owner", Priority: 2,
	})
	require.NoError(t, err)
	otherTodo, err := svc.Create(asIdentity(other), &TodoInput{
		Title: "Theirs", Description: "belongs to other", Priority: 3,
	})
	require.NoError(t, err)

	t.Run("List is owner-scoped for non-admins", func(t *testing.T) {
		todos, err := svc.List(asIdentity(owner))
		require.NoError(t, err)
		require.Len(t, todos, 1)
		for _, todo := range todos {
			assert.Equal(t, owner.ID, todo.OwnerID)
		}
	})

	t.Run("List is unscoped for admins", func(t *testing.T) {
		todos, err := svc.List(asIdentity(admin))
		require.NoError(t, err)
		assert.Len(t, todos, 2)
	})

	t.Run("Get hides other users' todos", func(t *testing.T) {
		_, err := svc.Get(asIdentity(owner), otherTodo.ID)
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("Admin can fetch any todo", func(t *testing.T) {
		todo, err := svc.Get(asIdentity(admin), ownTodo.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mine", todo.Title)
	})

	t.Run("Update of a foreign todo is not found", func(t *testing.T) {
		err := svc.Update(asIdentity(owner), otherTodo.ID, &TodoInput{
			Title: "Hijacked", Description: "should not happen", Priority: 1,
		})
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("Delete of a foreign todo is not found", func(t *testing.T) {
		err := svc.Delete(asIdentity(other), ownTodo.ID)
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestTodoServiceValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTodoService(repositories.NewTodoRepository(db))
	caller := asIdentity(createTestUser(t, db, "owner", "password", models.RoleUser))

	cases := []struct {
		name  string
		input TodoInput
		field string
	}{
		{"Title too short", TodoInput{Title: "ab", Description: "valid description", Priority: 1}, "title"},
		{"Description too short", TodoInput{Title: "valid", Description: "ab", Priority: 1}, "description"},
		{"Description too long", TodoInput{Title: "valid", Description: strings.Repeat("a", 101), Priority: 1}, "description"},
		{"Priority too low", TodoInput{Title: "valid", Description: "valid description", Priority: 0}, "priority"},
		{"Priority too high", TodoInput{Title: "valid", Description: "valid description", Priority: 6}, "priority"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(caller, &tc.input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)

			found := false
			for _, fe := range verr.Fields {
				if fe.Field == tc.field {
					found = true
				}
			}
			assert.True(t, found, "expected a violation on %q, got %v", tc.field, verr.Fields)

			// Nothing may be persisted on a validation failure.
			var count int64
			db.Model(&models.Todo{}).Count(&count)
			assert.Zero(t, count)
		})
	}

	t.Run("Every failing field is reported", func(t *testing.T) {
		_, err := svc.Create(caller, &TodoInput{Title: "ab", Description: "x", Priority: 9})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 3)
	})

	t.Run("Boundary values are accepted", func(t *testing.T) {
		_, err := svc.Create(caller, &TodoInput{Title: "abc", Description: "abc", Priority: 1})
		assert.NoError(t, err)
		_, err = svc.Create(caller, &TodoInput{Title: "abc", Description: strings.Repeat("a", 100), Priority: 5})
		assert.NoError(t, err)
	})
}

func TestTodoServiceDeleteThenGet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTodoService(repositories.NewTodoRepository(db))
	caller := asIdentity(createTestUser(t, db, "owner", "password", models.RoleUser))

	todo, err := svc.Create(caller, &TodoInput{
		Title: "Short lived", Description: "about to disappear", Priority: 4,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(caller, todo.ID))

	_, err = svc.Get(caller, todo.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ToDo item not found", notFound.Message)

	// Deleting again is also not found; removal is permanent.
	err = svc.Delete(caller, todo.ID)
	assert.ErrorAs(t, err, &notFound)
}

func TestTodoServiceUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTodoService(repositories.NewTodoRepository(db))
	caller := asIdentity(createTestUser(t, db, "owner", "password", models.RoleUser))

	todo, err := svc.Create(caller, &TodoInput{
		Title: "Test ToDo", Description: "This is a test todo item", Priority: 1,
	})
	require.NoError(t, err)

	err = svc.Update(caller, todo.ID, &TodoInput{
		Title: "Updated ToDo", Description: "This is an updated todo item", Priority: 3, Completed: true,
	})
	require.NoError(t, err)

	updated, err := svc.Get(caller, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated ToDo", updated.Title)
	assert.Equal(t, 3, updated.Priority)
	assert.True(t, updated.Completed)
	assert.Equal(t, caller.UserID, updated.OwnerID)
}
