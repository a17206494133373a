package invoice

import (
	"net/http"

	"biztime/internal/shared/route"
)

func Routes(handler *Handler) []route.Route {
	return []route.Route{
		route.New(http.MethodGet, "/invoices", handler.List),
		route.New(http.MethodPost, "/invoices", handler.Create),
		route.New(http.MethodGet, "/invoices/:id", handler.GetByID),
		route.New(http.MethodPatch, "/invoices/:id", handler.Update),
		route.New(http.MethodDelete, "/invoices/:id", handler.Delete),
	}
}
