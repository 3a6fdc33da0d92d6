package controllers

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"

	"taskhub/services"
)

// AuthController serves login and registration.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates an AuthController instance.
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRoutes sets up the auth routes on a go-restful WebService.
func (ctl *AuthController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/auth").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.POST("/token").To(ctl.loginHandler).
		Doc("Exchange username and password for a bearer token").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Reads(services.LoginInput{}).
		Returns(http.StatusOK, "Token issued", TokenResponse{}).
		Returns(http.StatusUnauthorized, "Authentication failed", nil))

	ws.Route(ws.POST("/").To(ctl.registerHandler).
		Doc("Register a new user").
		Metadata(restfulspec.KeyOpenAPITags, []string{"auth"}).
		Reads(services.RegisterInput{}).
		Returns(http.StatusCreated, "User created", nil).
		Returns(http.StatusConflict, "Username already exists", nil).
		Returns(http.StatusUnprocessableEntity, "Validation failed", nil))
}

func (ctl *AuthController) loginHandler(request *restful.Request, response *restful.Response) {
	input := new(services.LoginInput)
	if err := request.ReadEntity(input); err != nil {
		writeDetail(response, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := ctl.authService.Login(input)
	if err != nil {
		writeServiceError(response, err)
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK,
		TokenResponse{AccessToken: token, TokenType: "bearer"}, restful.MIME_JSON)
}

func (ctl *AuthController) registerHandler(request *restful.Request, response *restful.Response) {
	input := new(services.RegisterInput)
	if err := request.ReadEntity(input); err != nil {
		writeDetail(response, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := ctl.authService.Register(input); err != nil {
		writeServiceError(response, err)
		return
	}

	response.WriteHeader(http.StatusCreated)
}
