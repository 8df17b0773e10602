package router

import (
	"github.com/deppfellow/person-service/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerPersonRoutes registers the person endpoints. POST / mirrors the
// API Gateway route the Lambda function is deployed behind.
func registerPersonRoutes(r *echo.Echo, h *handler.Handlers) {
	addPerson := handler.Echo(h.Person.AddPerson())

	r.POST("/", addPerson)
	r.POST("/persons", addPerson)
}
