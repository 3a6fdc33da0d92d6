package services

import (
	"errors"

	"gorm.io/gorm"

	"taskhub/models"
	"taskhub/repositories"
)

// The AdminService interface defines cross-user operations. Role gating
// happens at the route filter; these methods assume an admin caller.
type AdminService interface {
	ListAllTodos() ([]models.Todo, error)
	ListTodosByUser(userID uint) ([]models.Todo, error)
	ListActiveUsers() ([]models.User, error)
	DeleteTodo(id uint) error
}

type adminService struct {
	users repositories.UserRepository
	todos repositories.TodoRepository
}

var _ AdminService = (*adminService)(nil)

// NewAdminService creates a new AdminService instance.
func NewAdminService(users repositories.UserRepository, todos repositories.TodoRepository) AdminService {
	return &adminService{users: users, todos: todos}
}

func (s *adminService) ListAllTodos() ([]models.Todo, error) {
	return s.todos.FindAll()
}

// ListTodosByUser returns the todos of an arbitrary user. An unknown user id
// is a 404, distinct from a user who simply has no todos.
func (s *adminService) ListTodosByUser(userID uint) ([]models.Todo, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}
	return s.todos.FindByOwner(userID)
}

func (s *adminService) ListActiveUsers() ([]models.User, error) {
	return s.users.FindActive()
}

func (s *adminService) DeleteTodo(id uint) error {
	if _, err := s.todos.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errTodoNotFound
		}
		return err
	}
	return s.todos.Delete(id)
}
