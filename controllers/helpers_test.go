package controllers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskhub/auth"
	"taskhub/models"
	"taskhub/repositories"
	"taskhub/services"
)

// setupTestDB opens a per-test in-memory SQLite database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Todo{}))
	return db
}

// setupContainer wires the full HTTP surface against the given database,
// the same way main does.
func setupContainer(db *gorm.DB) *restful.Container {
	userRepo := repositories.NewUserRepository(db)
	todoRepo := repositories.NewTodoRepository(db)

	authService := services.NewAuthService(userRepo, 20*time.Minute)
	todoService := services.NewTodoService(todoRepo)
	userService := services.NewUserService(userRepo)
	adminService := services.NewAdminService(userRepo, todoRepo)

	container := restful.NewContainer()
	for _, ctl := range []interface {
		RegisterRoutes(ws *restful.WebService)
	}{
		NewAuthController(authService),
		NewTodoController(todoService),
		NewAdminController(adminService),
		NewUserController(userService),
		NewHealthController(),
	} {
		ws := new(restful.WebService)
		ctl.RegisterRoutes(ws)
		container.Add(ws)
	}
	return container
}

func seedUser(t *testing.T, db *gorm.DB, username, password string, role models.Role) *models.User {
	t.Helper()
	digest, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		FirstName:      "Test",
		LastName:       "User",
		HashedPassword: digest,
		Role:           role,
		IsActive:       true,
		PhoneNumber:    "1234567890",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func bearerToken(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(user, 20*time.Minute)
	require.NoError(t, err)
	return "Bearer " + token
}
