package user

import (
	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/middleware"
)

func Routes(r gin.IRouter, authenticationMiddleware middleware.AuthenticationMiddleware, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)
	tokenAuthenticationRouter.GET("/users/me", handler.Me)
}
