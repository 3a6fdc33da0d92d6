package services

import (
	"errors"

	"gorm.io/gorm"

	"taskhub/auth"
	"taskhub/models"
	"taskhub/repositories"
)

// The TodoService interface defines owner-scoped CRUD over todos. Admin
// callers see every row; everyone else sees only their own.
type TodoService interface {
	List(caller auth.Identity) ([]models.Todo, error)
	Get(caller auth.Identity, id uint) (*models.Todo, error)
	Create(caller auth.Identity, input *TodoInput) (*models.Todo, error)
	Update(caller auth.Identity, id uint, input *TodoInput) error
	Delete(caller auth.Identity, id uint) error
}

// TodoInput is the request body for both create and update.
type TodoInput struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=3,max=100"`
	Priority    int    `json:"priority" validate:"gte=1,lte=5"`
	Completed   bool   `json:"completed"`
}

type todoService struct {
	todos repositories.TodoRepository
}

var _ TodoService = (*todoService)(nil)

// NewTodoService creates a new TodoService instance.
func NewTodoService(todos repositories.TodoRepository) TodoService {
	return &todoService{todos: todos}
}

var errTodoNotFound = &NotFoundError{Message: "ToDo item not found"}

// List returns every todo for admins and only the caller's own otherwise.
func (s *todoService) List(caller auth.Identity) ([]models.Todo, error) {
	if caller.IsAdmin() {
		return s.todos.FindAll()
	}
	return s.todos.FindByOwner(caller.UserID)
}

// Get fetches a todo within the caller's visible set.
func (s *todoService) Get(caller auth.Identity, id uint) (*models.Todo, error) {
	todo, err := s.visible(caller, id)
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// Create validates the fields, stamps the caller as owner and persists.
// Nothing is written when validation fails.
func (s *todoService) Create(caller auth.Identity, input *TodoInput) (*models.Todo, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	todo := &models.Todo{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
		OwnerID:     caller.UserID,
	}
	if err := s.todos.Create(todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update overwrites title, description, priority and completed in place.
func (s *todoService) Update(caller auth.Identity, id uint, input *TodoInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	todo, err := s.visible(caller, id)
	if err != nil {
		return err
	}

	todo.Title = input.Title
	todo.Description = input.Description
	todo.Priority = input.Priority
	todo.Completed = input.Completed
	return s.todos.Update(todo)
}

// Delete removes the todo permanently; a later Get yields not-found.
func (s *todoService) Delete(caller auth.Identity, id uint) error {
	todo, err := s.visible(caller, id)
	if err != nil {
		return err
	}
	return s.todos.Delete(todo.ID)
}

// visible resolves id inside the caller's visible set. Rows owned by other
// users are reported as absent for non-admins.
func (s *todoService) visible(caller auth.Identity, id uint) (*models.Todo, error) {
	var (
		todo *models.Todo
		err  error
	)
	if caller.IsAdmin() {
		todo, err = s.todos.FindByID(id)
	} else {
		todo, err = s.todos.FindByIDAndOwner(id, caller.UserID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}
