package controllers

import (
	"net/http"

	restful "github.com/emicklei/go-restful/v3"
)

// HealthController answers the liveness probe.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctl *HealthController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/healthy").Produces(restful.MIME_JSON)

	ws.Route(ws.GET("/").To(ctl.healthHandler).
		Doc("Health probe"))
}

func (ctl *HealthController) healthHandler(request *restful.Request, response *restful.Response) {
	_ = response.WriteHeaderAndJson(http.StatusOK,
		map[string]string{"status": "Healthy"}, restful.MIME_JSON)
}
