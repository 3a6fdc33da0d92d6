package services

import (
	"errors"

	"taskhub/models"
	"taskhub/repositories"
)

// The BookService interface fronts the in-memory demo catalog. These routes
// are public; there is no caller scoping.
type BookService interface {
	List() []models.Book
	Get(id uint) (*models.Book, error)
	ListByAuthor(author string) []models.Book
	Create(input *BookInput) (*models.Book, error)
	Update(id uint, input *BookInput) error
	Delete(id uint) error
}

type BookInput struct {
	Title       string `json:"title" validate:"required,min=3"`
	Author      string `json:"author" validate:"required,min=1"`
	Description string `json:"description"`
	Rating      int    `json:"rating" validate:"gte=2,lte=5"`
}

type bookService struct {
	books repositories.BookRepository
}

var _ BookService = (*bookService)(nil)

// NewBookService creates a new BookService instance.
func NewBookService(books repositories.BookRepository) BookService {
	return &bookService{books: books}
}

var errBookNotFound = &NotFoundError{Message: "Book not found"}

func (s *bookService) List() []models.Book {
	return s.books.FindAll()
}

func (s *bookService) Get(id uint) (*models.Book, error) {
	book, err := s.books.FindByID(id)
	if err != nil {
		return nil, errBookNotFound
	}
	return book, nil
}

func (s *bookService) ListByAuthor(author string) []models.Book {
	return s.books.FindByAuthor(author)
}

func (s *bookService) Create(input *BookInput) (*models.Book, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	book := &models.Book{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		Rating:      input.Rating,
	}
	s.books.Create(book)
	return book, nil
}

func (s *bookService) Update(id uint, input *BookInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	book := &models.Book{
		ID:          id,
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		Rating:      input.Rating,
	}
	if err := s.books.Update(book); err != nil {
		if errors.Is(err, repositories.ErrBookNotFound) {
			return errBookNotFound
		}
		return err
	}
	return nil
}

func (s *bookService) Delete(id uint) error {
	if err := s.books.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrBookNotFound) {
			return errBookNotFound
		}
		return err
	}
	return nil
}
