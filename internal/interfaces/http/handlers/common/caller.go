// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	"jirant/internal/shared/authorization"
	"jirant/internal/shared/constants"
	"jirant/internal/shared/errors"
	"jirant/internal/shared/utils"
)

// RequireCaller returns the authenticated caller or writes a 401 and reports false.
func RequireCaller(c *gin.Context) (authorization.Caller, bool) {
	caller, ok := authorization.CallerFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
		return authorization.Caller{}, false
	}
	return caller, true
}

// BindJSON decodes the request body and writes a 400 with field details on failure.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return false
	}
	return true
}
