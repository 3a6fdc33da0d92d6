package repositories

import (
	"taskhub/models"

	"gorm.io/gorm"
)

// TodoRepository interface defines Todo-related database operations
type TodoRepository interface {
	Create(todo *models.Todo) error
	FindByID(id uint) (*models.Todo, error)
	FindByIDAndOwner(id uint, ownerID uint) (*models.Todo, error)
	FindByOwner(ownerID uint) ([]models.Todo, error)
	FindAll() ([]models.Todo, error)
	Update(todo *models.Todo) error
	Delete(id uint) error
}

// todoRepository implements the TodoRepository interface
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository instance
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

func (r *todoRepository) FindByID(id uint) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.First(&todo, id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// FindByIDAndOwner looks a todo up within a single owner's visible set. A
// row owned by someone else is a not-found, never a different error.
func (r *todoRepository) FindByIDAndOwner(id uint, ownerID uint) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) FindByOwner(ownerID uint) ([]models.Todo, error) {
	var todos []models.Todo
	if err := r.db.Where("owner_id = ?", ownerID).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) FindAll() ([]models.Todo, error) {
	var todos []models.Todo
	if err := r.db.Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) Update(todo *models.Todo) error {
	return r.db.Save(todo).Error
}

// Delete removes the row permanently. There is no soft delete on todos.
func (r *todoRepository) Delete(id uint) error {
	return r.db.Delete(&models.Todo{}, id).Error
}
