package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/firepost/backend/internal/service"
)

// RegisterRoutes wires the full HTTP surface onto the router.
func RegisterRoutes(r *gin.Engine, posts *PostHandler, users *UserHandler, userSvc *service.UserService) {
	r.GET("/", Health)
	r.GET("/openapi.json", OpenAPIDoc)

	r.POST("/signup", users.Signup)
	r.POST("/login", users.Login)

	r.GET("/posts", posts.List)
	r.GET("/posts/:id", posts.Get)

	authed := r.Group("/", Authenticate(userSvc))
	authed.POST("/posts", posts.Create)
	authed.PUT("/posts/:id", posts.Update)
	authed.DELETE("/posts/:id", posts.Delete)
}
