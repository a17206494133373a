// Package route describes endpoints as data so the full (method, path)
// table can be listed and tested without a listener.
package route

import "github.com/gin-gonic/gin"

type Route struct {
	Method   string
	Path     string
	Handlers []gin.HandlerFunc
}

func New(method, path string, handlers ...gin.HandlerFunc) Route {
	return Route{Method: method, Path: path, Handlers: handlers}
}

// Register mounts every route of the table on r, in order.
func Register(r gin.IRoutes, routes []Route) {
	for _, rt := range routes {
		r.Handle(rt.Method, rt.Path, rt.Handlers...)
	}
}
