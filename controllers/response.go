package controllers

import (
	"errors"
	"net/http"
	"strconv"

	restful "github.com/emicklei/go-restful/v3"

	"taskhub/auth"
	"taskhub/services"
)

// detail is the uniform error envelope: {"detail": <message>}.
type detail struct {
	Detail string `json:"detail"`
}

func writeDetail(resp *restful.Response, status int, message string) {
	_ = resp.WriteHeaderAndJson(status, detail{Detail: message}, restful.MIME_JSON)
}

// writeServiceError translates typed domain errors into HTTP responses.
// Anything unrecognized becomes a 500 with no internal detail leaked.
func writeServiceError(resp *restful.Response, err error) {
	var (
		validationErr *services.ValidationError
		authErr       *services.AuthError
		notFoundErr   *services.NotFoundError
		conflictErr   *services.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		_ = resp.WriteHeaderAndJson(http.StatusUnprocessableEntity,
			map[string]interface{}{"detail": validationErr.Fields}, restful.MIME_JSON)
	case errors.As(err, &authErr):
		writeDetail(resp, http.StatusUnauthorized, authErr.Message)
	case errors.As(err, &notFoundErr):
		writeDetail(resp, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &conflictErr):
		writeDetail(resp, http.StatusConflict, conflictErr.Message)
	default:
		writeDetail(resp, http.StatusInternalServerError, "Internal server error")
	}
}

// requireCaller extracts the identity placed by the auth filter. It can only
// miss when a route forgot the filter, which is a wiring bug surfaced as 401.
func requireCaller(req *restful.Request, resp *restful.Response) (auth.Identity, bool) {
	caller, ok := auth.CallerFrom(req)
	if !ok {
		writeDetail(resp, http.StatusUnauthorized, "Authentication failed.")
		return auth.Identity{}, false
	}
	return caller, true
}

// parseIDParam parses a positive integer path parameter. Violations surface
// as a 422 naming the parameter, mirroring body validation failures.
func parseIDParam(req *restful.Request, resp *restful.Response, name string) (uint, bool) {
	raw := req.PathParameter(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = resp.WriteHeaderAndJson(http.StatusUnprocessableEntity,
			map[string]interface{}{"detail": []services.FieldError{
				{Field: name, Message: "must be a positive integer"},
			}}, restful.MIME_JSON)
		return 0, false
	}
	return uint(id), true
}
