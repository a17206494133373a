package company

import (
	"net/http"

	"biztime/internal/shared/route"

	"github.com/gin-gonic/gin"
)

// Routes lists the company endpoints. requireCompany guards every route
// addressed by :code.
func Routes(handler *Handler, requireCompany gin.HandlerFunc) []route.Route {
	return []route.Route{
		route.New(http.MethodGet, "/companies", handler.List),
		route.New(http.MethodPost, "/companies", handler.Create),
		route.New(http.MethodGet, "/companies/:code", requireCompany, handler.GetByCode),
		route.New(http.MethodPatch, "/companies/:code", requireCompany, handler.Update),
		route.New(http.MethodDelete, "/companies/:code", requireCompany, handler.Delete),
	}
}
