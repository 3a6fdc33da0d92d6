package controllers

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"

	"taskhub/auth"
	"taskhub/models"
	"taskhub/services"
)

// AdminController serves the cross-user operations. The whole WebService is
// gated on role == admin; non-admin callers get 401 regardless of the
// target's existence.
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates an AdminController instance.
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// RegisterRoutes sets up the admin routes on a go-restful WebService.
func (ctl *AdminController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/admin").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)
	ws.Filter(auth.AuthFilter())
	ws.Filter(auth.AdminFilter())

	ws.Route(ws.GET("/todo").To(ctl.listAllTodosHandler).
		Doc("List every todo across all users").
		Metadata(restfulspec.KeyOpenAPITags, []string{"admin"}).
		Writes([]models.Todo{}).
		Returns(http.StatusOK, "Todos listed", []models.Todo{}).
		Returns(http.StatusUnauthorized, "Authentication failed", nil))

	ws.Route(ws.GET("/todo/user/{user-id}").To(ctl.listTodosByUserHandler).
		Doc("List the todos of one user").
		Param(ws.PathParameter("user-id", "Identifier of the user").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"admin"}).
		Writes([]models.Todo{}).
		Returns(http.StatusOK, "Todos listed", []models.Todo{}).
		Returns(http.StatusUnauthorized, "Authentication failed", nil).
		Returns(http.StatusNotFound, "User not found", nil))

	ws.Route(ws.GET("/users").To(ctl.listActiveUsersHandler).
		Doc("List all active users").
		Metadata(restfulspec.KeyOpenAPITags, []string{"admin"}).
		Writes([]UserResponse{}).
		Returns(http.StatusOK, "Users listed", []UserResponse{}).
		Returns(http.StatusUnauthorized, "Authentication failed", nil))

	ws.Route(ws.DELETE("/todo/{todo-id}").To(ctl.deleteTodoHandler).
		Doc("Delete any todo by id").
		Param(ws.PathParameter("todo-id", "Identifier of the todo").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"admin"}).
		Returns(http.StatusNoContent, "Todo deleted", nil).
		Returns(http.StatusUnauthorized, "Authentication failed", nil).
		Returns(http.StatusNotFound, "Todo not found", nil))
}

func (ctl *AdminController) listAllTodosHandler(request *restful.Request, response *restful.Response) {
	todos, err := ctl.adminService.ListAllTodos()
	if err != nil {
		writeServiceError(response, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, todos, restful.MIME_JSON)
}

func (ctl *AdminController) listTodosByUserHandler(request *restful.Request, response *restful.Response) {
	userID, ok := parseIDParam(request, response, "user-id")
	if !ok {
		return
	}

	todos, err := ctl.adminService.ListTodosByUser(userID)
	if err != nil {
		writeServiceError(response, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, todos, restful.MIME_JSON)
}

func (ctl *AdminController) listActiveUsersHandler(request *restful.Request, response *restful.Response) {
	users, err := ctl.adminService.ListActiveUsers()
	if err != nil {
		writeServiceError(response, err)
		return
	}

	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = mapModelToUserResponse(&users[i])
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, out, restful.MIME_JSON)
}

func (ctl *AdminController) deleteTodoHandler(request *restful.Request, response *restful.Response) {
	id, ok := parseIDParam(request, response, "todo-id")
	if !ok {
		return
	}

	if err := ctl.adminService.DeleteTodo(id); err != nil {
		writeServiceError(response, err)
		return
	}
	response.WriteHeader(http.StatusNoContent)
}
