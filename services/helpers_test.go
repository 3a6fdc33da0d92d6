package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskhub/auth"
	"taskhub/models"
)

// setupTestDB opens a per-test in-memory SQLite database. Naming the
// database after the test keeps parallel tests from sharing state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Todo{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string, role models.Role) *models.User {
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
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func asIdentity(user *models.User) auth.Identity {
	return auth.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
}
