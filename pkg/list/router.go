package list

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(context *gin.Context)
}

func Routes(r gin.IRouter, authenticationMiddleware AuthenticationMiddleware, handler Handler) {
	r.GET("/lists", handler.FindAll)
	r.GET("/lists/:id", handler.Find)

	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)
	tokenAuthenticationRouter.POST("/lists", handler.Create)
	tokenAuthenticationRouter.PUT("/lists/:id", handler.Update)
	tokenAuthenticationRouter.DELETE("/lists/:id", handler.Delete)
}
