package controllers

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"

	"taskhub/auth"
	"taskhub/models"
	"taskhub/services"
)

// UserController serves the self-service profile surface.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a UserController instance.
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// UserResponse is the user serialization sent to clients. The password hash
// is excluded here explicitly, not just by a struct tag on the model.
type UserResponse struct {
	ID          uint        `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Role        models.Role `json:"role"`
	IsActive    bool        `json:"is_active"`
	PhoneNumber string      `json:"phone_number"`
}

func mapModelToUserResponse(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        user.Role,
		IsActive:    user.IsActive,
		PhoneNumber: user.PhoneNumber,
	}
}

// RegisterRoutes sets up the user routes on a go-restful WebService.
func (ctl *UserController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/user").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)
	ws.Filter(auth.AuthFilter())

	ws.Route(ws.GET("/").To(ctl.getSelfHandler).
		Doc("Get the caller's own profile").
		Metadata(restfulspec.KeyOpenAPITags, []string{"user"}).
		Writes(UserResponse{}).
		Returns(http.StatusOK, "Profile", UserResponse{}).
		Returns(http.StatusUnauthorized, "Authentication failed", nil))

	ws.Route(ws.PUT("/password").To(ctl.changePasswordHandler).
		Doc("Change the caller's password, re-verifying the current one").
		Metadata(restfulspec.KeyOpenAPITags, []string{"user"}).
		Reads(services.PasswordChangeInput{}).
		Returns(http.StatusNoContent, "Password changed", nil).
		Returns(http.StatusUnauthorized, "Incorrect password", nil))

	ws.Route(ws.PUT("/phonenumber/{phone-number}").To(ctl.changePhoneNumberHandler).
		Doc("Replace the caller's phone number").
		Param(ws.PathParameter("phone-number", "New phone number").DataType("string")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"user"}).
		Returns(http.StatusNoContent, "Phone number changed", nil).
		Returns(http.StatusUnauthorized, "Authentication failed", nil))
}

func (ctl *UserController) getSelfHandler(request *restful.Request, response *restful.Response) {
	caller, ok := requireCaller(request, response)
	if !ok {
		return
	}

	user, err := ctl.userService.GetSelf(caller)
	if err != nil {
		writeServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, mapModelToUserResponse(user), restful.MIME_JSON)
}

func (ctl *UserController) changePasswordHandler(request *restful.Request, response *restful.Response) {
	caller, ok := requireCaller(request, response)
	if !ok {
		return
	}

	input := new(services.PasswordChangeInput)
	if err := request.ReadEntity(input); err != nil {
		writeDetail(response, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := ctl.userService.ChangePassword(caller, input); err != nil {
		writeServiceError(response, err)
		return
	}
	response.WriteHeader(http.StatusNoContent)
}

func (ctl *UserController) changePhoneNumberHandler(request *restful.Request, response *restful.Response) {
	caller, ok := requireCaller(request, response)
	if !ok {
		return
	}

	phoneNumber := request.PathParameter("phone-number")
	if err := ctl.userService.ChangePhoneNumber(caller, phoneNumber); err != nil {
		writeServiceError(response, err)
		return
	}
	response.WriteHeader(http.StatusNoContent)
}
