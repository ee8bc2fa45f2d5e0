package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
)

// respondWithError maps service errors onto HTTP responses with a {"detail": ...} body
func respondWithError(ctx *gin.Context, err error) {
	var validationErr *models.ValidationError
	var invariantErr *models.InvariantError
	var storeErr *database.StoreError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusUnprocessableEntity, models.NewValidationErrorResponse(validationErr))
	case errors.As(err, &invariantErr):
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(invariantErr.Message))
	case errors.Is(err, database.ErrStoreUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, models.NewErrorResponse(models.MsgDatabaseUnavailable))
	case errors.As(err, &storeErr):
		log.WithError(err).WithFields(log.Fields{
			"collection": storeErr.Collection,
			"op":         storeErr.Op,
		}).Error("Store operation failed")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgInternalServer))
	default:
		log.WithError(err).Error("Unexpected error while handling request")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgInternalServer))
	}
}

// bindInput decodes the JSON body into input, reporting decode failures and
// explicit nulls on non-nullable fields as validation errors
func bindInput(ctx *gin.Context, input interface{}) error {
	if err := ctx.ShouldBindBodyWith(input, binding.JSON); err != nil {
		return models.DecodeError(err)
	}
	if body, ok := ctx.Get(gin.BodyBytesKey); ok {
		if raw, ok := body.([]byte); ok {
			return models.RejectNulls(raw, input)
		}
	}
	return nil
}
