package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is a status code plus the client-facing message. Handlers
// translate every failure into one of these at their own boundary.
type APIError struct {
	Code    int
	Message string
}

// HandlerFunc is the shape of an endpoint: a payload or an APIError.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// Created wraps a payload so the resolver replies 201 instead of 200.
type Created struct {
	Body any
}

// ResolveEndpoint adapts a HandlerFunc to gin, writing either the
// mapped error or the payload as JSON.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		if created, ok := result.(Created); ok {
			ctx.JSON(http.StatusCreated, created.Body)
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

// Controller is the surface a Module mounts its endpoints on.
type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h HandlerFunc) {
	c.Group.GET(path, ResolveEndpoint(h))
}

func (c *Controller) POST(path string, h HandlerFunc) {
	c.Group.POST(path, ResolveEndpoint(h))
}

func (c *Controller) PUT(path string, h HandlerFunc) {
	c.Group.PUT(path, ResolveEndpoint(h))
}

func (c *Controller) DELETE(path string, h HandlerFunc) {
	c.Group.DELETE(path, ResolveEndpoint(h))
}
