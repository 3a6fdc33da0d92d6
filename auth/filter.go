package auth

import (
	"net/http"
	"strings"

	restful "github.com/emicklei/go-restful/v3"

	"taskhub/models"
)

const identityAttribute = "identity"

// Identity is the caller resolved from a verified token. It carries all the
// claims the services need; no store lookup happens during authentication.
type Identity struct {
	UserID   uint
	Username string
	Role     models.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == models.RoleAdmin
}

func writeAuthFailure(resp *restful.Response) {
	_ = resp.WriteHeaderAndJson(http.StatusUnauthorized,
		map[string]string{"detail": "Authentication failed."}, restful.MIME_JSON)
}

// AuthFilter creates a go-restful FilterFunction for JWT authentication.
// A missing token and an invalid one are indistinguishable to the caller:
// both produce 401 without invoking the route function.
func AuthFilter() restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		authHeader := req.HeaderParameter("Authorization")
		if authHeader == "" {
			writeAuthFailure(resp)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			writeAuthFailure(resp)
			return
		}

		claims, err := ParseAndValidateToken(parts[1])
		if err != nil {
			writeAuthFailure(resp)
			return
		}

		req.SetAttribute(identityAttribute, Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})
		chain.ProcessFilter(req, resp)
	}
}

// AdminFilter gates a route on role == admin. It runs after AuthFilter and
// answers 401 for non-admin callers, matching the admin surface contract.
func AdminFilter() restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		caller, ok := CallerFrom(req)
		if !ok || !caller.IsAdmin() {
			writeAuthFailure(resp)
			return
		}
		chain.ProcessFilter(req, resp)
	}
}

// CallerFrom extracts the identity stored by AuthFilter.
func CallerFrom(req *restful.Request) (Identity, bool) {
	attr := req.Attribute(identityAttribute)
	if attr == nil {
		return Identity{}, false
	}
	id, ok := attr.(Identity)
	return id, ok
}
