package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiwidjaja/bistro-orders/models"
	"github.com/adiwidjaja/bistro-orders/services"
	"github.com/adiwidjaja/bistro-orders/utils"
)

// respondDomainError maps the service error taxonomy onto HTTP codes so
// each handler doesn't repeat the same switch.
func respondDomainError(c *gin.Context, err error) {
	var (
		validationErr *models.ValidationError
		transitionErr *models.TransitionError
		conflictErr   *models.ConflictError
	)

	switch {
	case errors.Is(err, models.ErrAuthRequired):
		utils.RespondError(c, http.StatusUnauthorized, err)
	case errors.Is(err, models.ErrForbidden):
		utils.RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &validationErr), errors.As(err, &transitionErr):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &conflictErr):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
