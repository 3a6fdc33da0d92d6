package controllers

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"

	"taskhub/models"
	"taskhub/services"
)

// BookController serves the public in-memory catalog demo. No auth.
type BookController struct {
	bookService services.BookService
}

// NewBookController creates a BookController instance.
func NewBookController(bookService services.BookService) *BookController {
	return &BookController{bookService: bookService}
}

// RegisterRoutes sets up the book routes on a go-restful WebService.
func (ctl *BookController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/books").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.GET("/").To(ctl.listHandler).
		Doc("List all books, optionally filtered by author").
		Param(ws.QueryParameter("author", "Filter by author (case-insensitive)").DataType("string")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"books"}).
		Writes([]models.Book{}).
		Returns(http.StatusOK, "Books listed", []models.Book{}))

	ws.Route(ws.GET("/{book-id}").To(ctl.getHandler).
		Doc("Get a book by id").
		Param(ws.PathParameter("book-id", "Identifier of the book").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"books"}).
		Writes(models.Book{}).
		Returns(http.StatusOK, "Book found", models.Book{}).
		Returns(http.StatusNotFound, "Book not found", nil))

	ws.Route(ws.POST("/").To(ctl.createHandler).
		Doc("Add a book to the catalog").
		Metadata(restfulspec.KeyOpenAPITags, []string{"books"}).
		Reads(services.BookInput{}).
		Returns(http.StatusCreated, "Book created", models.Book{}).
		Returns(http.StatusUnprocessableEntity, "Validation failed", nil))

	ws.Route(ws.PUT("/{book-id}").To(ctl.updateHandler).
		Doc("Update a book by id").
		Param(ws.PathParameter("book-id", "Identifier of the book").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"books"}).
		Reads(services.BookInput{}).
		Returns(http.StatusNoContent, "Book updated", nil).
		Returns(http.StatusNotFound, "Book not found", nil).
		Returns(http.StatusUnprocessableEntity, "Validation failed", nil))

	ws.Route(ws.DELETE("/{book-id}").To(ctl.deleteHandler).
		Doc("Remove a book by id").
		Param(ws.PathParameter("book-id", "Identifier of the book").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"books"}).
		Returns(http.StatusNoContent, "Book deleted", nil).
		Returns(http.StatusNotFound, "Book not found", nil))
}

func (ctl *BookController) listHandler(request *restful.Request, response *restful.Response) {
	var books []models.Book
	if author := request.QueryParameter("author"); author != "" {
		books = ctl.bookService.ListByAuthor(author)
	} else {
		books = ctl.bookService.List()
	}
	if books == nil {
		books = []models.Book{}
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, books, restful.MIME_JSON)
}

func (ctl *BookController) getHandler(request *restful.Request, response *restful.Response) {
	id, ok := parseIDParam(request, response, "book-id")
	if !ok {
		return
	}

	book, err := ctl.bookService.Get(id)
	if err != nil {
		writeServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, book, restful.MIME_JSON)
}

func (ctl *BookController) createHandler(request *restful.Request, response *restful.Response) {
	input := new(services.BookInput)
	if err := request.ReadEntity(input); err != nil {
		writeDetail(response, http.StatusBadRequest, "Invalid request body")
		return
	}

	book, err := ctl.bookService.Create(input)
	if err != nil {
		writeServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusCreated, book, restful.MIME_JSON)
}

func (ctl *BookController) updateHandler(request *restful.Request, response *restful.Response) {
	id, ok := parseIDParam(request, response, "book-id")
	if !ok {
		return
	}

	input := new(services.BookInput)
	if err := request.ReadEntity(input); err != nil {
		writeDetail(response, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := ctl.bookService.Update(id, input); err != nil {
		writeServiceError(response, err)
		return
	}
	response.WriteHeader(http.StatusNoContent)
}

func (ctl *BookController) deleteHandler(request *restful.Request, response *restful.Response) {
	id, ok := parseIDParam(request, response, "book-id")
	if !ok {
		return
	}

	if err := ctl.bookService.Delete(id); err != nil {
		writeServiceError(response, err)
		return
	}
	response.WriteHeader(http.StatusNoContent)
}
