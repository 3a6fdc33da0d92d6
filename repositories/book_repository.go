package repositories

import (
	"errors"
	"strings"
	"sync"

	"taskhub/models"
)

// ErrBookNotFound is returned when a catalog lookup misses.
var ErrBookNotFound = errors.New("book not found")

// BookRepository mirrors the database repositories over an in-memory table.
// The catalog is demo data; it is not persisted.
type BookRepository interface {
	FindAll() []models.Book
	FindByID(id uint) (*models.Book, error)
	FindByAuthor(author string) []models.Book
	Create(book *models.Book)
	Update(book *models.Book) error
	Delete(id uint) error
}

type bookRepository struct {
	mu    sync.RWMutex
	books []models.Book
}

// NewBookRepository creates a catalog pre-loaded with the demo titles.
func NewBookRepository() BookRepository {
	return &bookRepository{
		books: []models.Book{
			{ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Description: "A novel set in the Roaring Twenties.", Rating: 5},
			{ID: 2, Title: "To Kill a Mockingbird", Author: "Harper Lee", Description: "A novel about racial injustice in the Deep South.", Rating: 5},
			{ID: 3, Title: "1984", Author: "George Orwell", Description: "A dystopian novel about totalitarianism.", Rating: 4},
			{ID: 4, Title: "Pride and Prejudice", Author: "Jane Austen", Description: "A classic romance novel.", Rating: 5},
			{ID: 5, Title: "The Catcher in the Rye", Author: "J.D. Salinger", Description: "A novel about teenage rebellion.", Rating: 4},
			{ID: 6, Title: "Harry Potter and the Sorcerer's Stone", Author: "J.K. Rowling", Description: "The first book in the Harry Potter series.", Rating: 5},
		},
	}
}

func (r *bookRepository) FindAll() []models.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Book, len(r.books))
	copy(out, r.books)
	return out
}

func (r *bookRepository) FindByID(id uint) (*models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.books {
		if b.ID == id {
			book := b
			return &book, nil
		}
	}
	return nil, ErrBookNotFound
}

func (r *bookRepository) FindByAuthor(author string) []models.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Book
	for _, b := range r.books {
		if strings.EqualFold(b.Author, author) {
			out = append(out, b)
		}
	}
	return out
}

// Create assigns the next ID and appends the book.
func (r *bookRepository) Create(book *models.Book) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.books) == 0 {
		book.ID = 1
	} else {
		book.ID = r.books[len(r.books)-1].ID + 1
	}
	r.books = append(r.books, *book)
}

func (r *bookRepository) Update(book *models.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.books {
		if r.books[i].ID == book.ID {
			r.books[i] = *book
			return nil
		}
	}
	return ErrBookNotFound
}

func (r *bookRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.books {
		if r.books[i].ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return ErrBookNotFound
}
