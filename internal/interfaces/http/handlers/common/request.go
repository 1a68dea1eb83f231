// Package common holds request helpers shared by the HTTP handlers.
package common

import (
	"github.com/gin-gonic/gin"

	appcommon "github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/utils"
)

// BindError wraps a binding failure so it renders as a 400.
func BindError(err error) error {
	return errors.NewValidationError("invalid request body", err.Error())
}

// RequestMeta captures caller details for activity entries.
func RequestMeta(c *gin.Context) appcommon.RequestMeta {
	return appcommon.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// ParseTarget reads the :kind and :id path parameters.
func ParseTarget(c *gin.Context) (lifecycle.EntityRef, error) {
	id, err := utils.ParseUintParam(c, "id", c.Param("kind"))
	if err != nil {
		return lifecycle.EntityRef{}, err
	}
	ref, err := lifecycle.NewEntityRef(c.Param("kind"), id)
	if err != nil {
		return lifecycle.EntityRef{}, errors.NewValidationError(err.Error())
	}
	return ref, nil
}
