package event

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(context *gin.Context)
	OptionalTokenAuthentication(context *gin.Context)
}

func Routes(r gin.IRouter, authenticationMiddleware AuthenticationMiddleware, handler Handler) {
	optionalAuthenticationRouter := r.Group("")
	optionalAuthenticationRouter.Use(authenticationMiddleware.OptionalTokenAuthentication)
	optionalAuthenticationRouter.GET("/events", handler.FindAll)
	optionalAuthenticationRouter.GET("/events/:id", handler.Find)
	optionalAuthenticationRouter.GET("/places/:id/events", handler.FindByPlace)

	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)
	tokenAuthenticationRouter.POST("/events", handler.Create)
	tokenAuthenticationRouter.PUT("/events/:id", handler.Update)
	tokenAuthenticationRouter.POST("/events/:id/cancel", handler.Cancel)
	tokenAuthenticationRouter.POST("/events/:id/join", handler.Join)
	tokenAuthenticationRouter.POST("/events/:id/unjoin", handler.Unjoin)
	tokenAuthenticationRouter.POST("/events/:id/messages", handler.Message)
}
