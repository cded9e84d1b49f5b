// Package i holds the interfaces shared by the HTTP controllers.
package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on a versioned group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}
