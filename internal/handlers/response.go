package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-dev/ideahub/internal/store"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

var domainErrors = []error{
	store.ErrDuplicateUsername,
	store.ErrInvalidCredentials,
	store.ErrOwnerNotFound,
	store.ErrProjectNotFound,
	store.ErrDuplicateProjectName,
	store.ErrNotFound,
}

// respondError maps store errors onto the wire contract: domain failures are
// 400s with the sentinel's message, infrastructure faults are 500s.
func respondError(ctx *gin.Context, err error) {
	for _, domainErr := range domainErrors {
		if errors.Is(err, domainErr) {
			badRequest(ctx, domainErr.Error())
			return
		}
	}

	log.Printf("store error: %v", err)

	ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   http.StatusText(http.StatusInternalServerError),
		Message: store.ErrStoreUnavailable.Error(),
	})
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   http.StatusText(http.StatusBadRequest),
		Message: message,
	})
}
