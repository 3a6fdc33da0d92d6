package controllers

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"

	"taskhub/auth"
	"taskhub/models"
	"taskhub/services"
)

// TodoController serves the caller-scoped todo CRUD surface.
type TodoController struct {
	todoService services.TodoService
}

// NewTodoController creates a TodoController instance.
func NewTodoController(todoService services.TodoService) *TodoController {
	return &TodoController{todoService: todoService}
}

// RegisterRoutes sets up the todo routes on a go-restful WebService. Every
// route sits behind the auth filter.
func (ctl *TodoController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/todo").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)
	ws.Filter(auth.AuthFilter())

	ws.Route(ws.GET("/").To(ctl.listHandler).
		Doc("List todos visible to the caller").
		Metadata(restfulspec.KeyOpenAPITags, []string{"todos"}).
		Writes([]models.Todo{}).
		Returns(http.StatusOK, "Todos listed", []models.Todo{}).
		Returns(http.StatusUnauthorized, "Authentication failed", nil))

	ws.Route(ws.GET("/{todo-id}").To(ctl.getHandler).
		Doc("Get a todo by id").
		Param(ws.PathParameter("todo-id", "Identifier of the todo").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"todos"}).
		Writes(models.Todo{}).
		Returns(http.StatusOK, "Todo found", models.Todo{}).
		Returns(http.StatusUnauthorized, "Authentication failed", nil).
		Returns(http.StatusNotFound, "Todo not found", nil))

	ws.Route(ws.POST("/").To(ctl.createHandler).
		Doc("Create a todo owned by the caller").
		Metadata(restfulspec.KeyOpenAPITags, []string{"todos"}).
		Reads(services.TodoInput{}).
		Returns(http.StatusCreated, "Todo created", nil).
		Returns(http.StatusUnauthorized, "Authentication failed", nil).
		Returns(http.StatusUnprocessableEntity, "Validation failed", nil))

	ws.Route(ws.PUT("/{todo-id}").To(ctl.updateHandler).
		Doc("Update a todo by id").
		Param(ws.PathParameter("todo-id", "Identifier of the todo").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"todos"}).
		Reads(services.TodoInput{}).
		Returns(http.StatusNoContent, "Todo updated", nil).
		Returns(http.StatusUnauthorized, "Authentication failed", nil).
		Returns(http.StatusNotFound, "Todo not found", nil).
		Returns(http.StatusUnprocessableEntity, "Validation failed", nil))

	ws.Route(ws.DELETE("/{todo-id}").To(ctl.deleteHandler).
		Doc("Delete a todo by id").
		Param(ws.PathParameter("todo-id", "Identifier of the todo").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"todos"}).
		Returns(http.StatusNoContent, "Todo deleted", nil).
		Returns(http.StatusUnauthorized, "Authentication failed", nil).
		Returns(http.StatusNotFound, "Todo not found", nil))
}

func (ctl *TodoController) listHandler(request *restful.Request, response *restful.Response) {
	caller, ok := requireCaller(request, response)
	if !ok {
		return
	}

	todos, err := ctl.todoService.List(caller)
	if err != nil {
		writeServiceError(response, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, todos, restful.MIME_JSON)
}

func (ctl *TodoController) getHandler(request *restful.Request, response *restful.Response) {
	caller, ok := requireCaller(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "todo-id")
	if !ok {
		return
	}

	todo, err := ctl.todoService.Get(caller, id)
	if err != nil {
		writeServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, todo, restful.MIME_JSON)
}

// createHandler answers 201 with an empty body; clients re-fetch via list.
func (ctl *TodoController) createHandler(request *restful.Request, response *restful.Response) {
	caller, ok := requireCaller(request, response)
	if !ok {
		return
	}

	input := new(services.TodoInput)
	if err := request.ReadEntity(input); err != nil {
		writeDetail(response, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := ctl.todoService.Create(caller, input); err != nil {
		writeServiceError(response, err)
		return
	}
	response.WriteHeader(http.StatusCreated)
}

func (ctl *TodoController) updateHandler(request *restful.Request, response *restful.Response) {
	caller, ok := requireCaller(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "todo-id")
	if !ok {
		return
	}

	input := new(services.TodoInput)
	if err := request.ReadEntity(input); err != nil {
		writeDetail(response, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := ctl.todoService.Update(caller, id, input); err != nil {
		writeServiceError(response, err)
		return
	}
	response.WriteHeader(http.StatusNoContent)
}

func (ctl *TodoController) deleteHandler(request *restful.Request, response *restful.Response) {
	caller, ok := requireCaller(request, response)
	if !ok {
		return
	}
	id, ok := parseIDParam(request, response, "todo-id")
	if !ok {
		return
	}

	if err := ctl.todoService.Delete(caller, id); err != nil {
		writeServiceError(response, err)
		return
	}
	response.WriteHeader(http.StatusNoContent)
}
