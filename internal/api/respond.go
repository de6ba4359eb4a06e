package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type apiError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	if v, ok := ctx.Get("request_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ctx.GetHeader(requestIDHeader)
}

func respondError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.JSON(status, gin.H{
		"error": apiError{
			Code:      code,
			Message:   message,
			RequestID: requestIDFrom(ctx),
			Details:   details,
		},
	})
}

func respondBadRequest(ctx *gin.Context, message string, details interface{}) {
	respondError(ctx, http.StatusBadRequest, "invalid_request", message, details)
}

func respondInternal(ctx *gin.Context, message string) {
	respondError(ctx, http.StatusInternalServerError, "internal_error", message, nil)
}
