package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/models"
)

func TestTodoRoutes(t *testing.T) {
	db := setupTestDB(t)
	container := setupContainer(db)

	owner := seedUser(t, db, "poorv", "testpassword", models.RoleUser)
	require.Equal(t, uint(1), owner.ID)
	token := bearerToken(t, owner)

	todo := models.Todo{
		Title:       "Test ToDo",
		Description: "This is a test todo item",
		Priority:    1,
		Completed:   false,
		OwnerID:     owner.ID,
	}
	require.NoError(t, db.Create(&todo).Error)

	t.Run("Read all authenticated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todo/", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`[{"id":1,"title":"Test ToDo","description":"This is a test todo item","priority":1,"completed":false,"owner_id":1}]`,
			w.Body.String())
	})

	t.Run("Read one authenticated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todo/1", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"id":1,"title":"Test ToDo","description":"This is a test todo item","priority":1,"completed":false,"owner_id":1}`,
			w.Body.String())
	})

	t.Run("Read one not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todo/999", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"ToDo item not found"}`, w.Body.String())
	})

	t.Run("Read without token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todo/", nil)
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Create todo", func(t *testing.T) {
		body := `{"title":"New ToDo","description":"This is a new todo item","priority":2,"completed":false}`
		req := httptest.NewRequest("POST", "/todo/", strings.NewReader(body))
		req.Header.Set("Authorization", token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Body.String())

		var created models.Todo
		require.NoError(t, db.Where("title = ?", "New ToDo").First(&created).Error)
		assert.Equal(t, "This is a new todo item", created.Description)
		assert.Equal(t, 2, created.Priority)
		assert.Equal(t, owner.ID, created.OwnerID)
	})

	t.Run("Create with invalid fields", func(t *testing.T) {
		body := `{"title":"ab","description":"x","priority":9,"completed":false}`
		req := httptest.NewRequest("POST", "/todo/", strings.NewReader(body))
		req.Header.Set("Authorization", token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "title")
		assert.Contains(t, w.Body.String(), "description")
		assert.Contains(t, w.Body.String(), "priority")

		var count int64
		db.Model(&models.Todo{}).Where("title = ?", "ab").Count(&count)
		assert.Zero(t, count)
	})

	t.Run("Update todo", func(t *testing.T) {
		body := `{"title":"Updated ToDo","description":"This is an updated todo item","priority":3,"completed":true}`
		req := httptest.NewRequest("PUT", "/todo/1", strings.NewReader(body))
		req.Header.Set("Authorization", token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)

		var updated models.Todo
		require.NoError(t, db.First(&updated, 1).Error)
		assert.Equal(t, "Updated ToDo", updated.Title)
		assert.True(t, updated.Completed)
	})

	t.Run("Update not found", func(t *testing.T) {
		body := `{"title":"Updated ToDo","description":"This is an updated todo item","priority":3,"completed":true}`
		req := httptest.NewRequest("PUT", "/todo/999", strings.NewReader(body))
		req.Header.Set("Authorization", token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"ToDo item not found"}`, w.Body.String())
	})

	t.Run("Delete todo then fetch", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/todo/1", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)

		req = httptest.NewRequest("GET", "/todo/1", nil)
		req.Header.Set("Authorization", token)
		w = httptest.NewRecorder()
		container.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTodoOwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	container := setupContainer(db)

	owner := seedUser(t, db, "owner", "password", models.RoleUser)
	other := seedUser(t, db, "other", "password", models.RoleUser)

	foreign := models.Todo{
		Title:       "Someone else's",
		Description: "not visible to owner",
		Priority:    2,
		OwnerID:     other.ID,
	}
	require.NoError(t, db.Create(&foreign).Error)

	t.Run("List excludes foreign todos", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todo/", nil)
		req.Header.Set("Authorization", bearerToken(t, owner))
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Get of a foreign todo is 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todo/1", nil)
		req.Header.Set("Authorization", bearerToken(t, owner))
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
