// Package api exposes the generation flows over HTTP.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CIhekweazu03/DescriptionGenerator/internal/event"
	"github.com/CIhekweazu03/DescriptionGenerator/internal/generator"
	"github.com/CIhekweazu03/DescriptionGenerator/internal/history"
)

const requestIDHeader = "X-Request-Id"

// Server serves the generation API.
type Server struct {
	Gen     *generator.Generator
	History *history.Store // nil disables the history endpoint
	Port    int
	Env     string
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	if s.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger())

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.POST("/description", s.handleDescription)
	v1.POST("/expectations", s.handleExpectations)
	v1.GET("/history", s.handleHistory)

	return r
}

// Run starts the server and blocks.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "history", s.History != nil)
	return s.Router().Run(addr)
}

func (s *Server) handleDescription(ctx *gin.Context) {
	var ev event.Event
	if !bindJSON(ctx, &ev) {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"description": s.Gen.Description(ev),
	})
}

// expectationsRequest is the event form plus an optional already-generated
// description. When the description is absent the server produces one first,
// so the expectations prompt always embeds a resolved description.
type expectationsRequest struct {
	event.Event
	Description string `json:"description"`
}

func (s *Server) handleExpectations(ctx *gin.Context) {
	var req expectationsRequest
	if !bindJSON(ctx, &req) {
		return
	}

	description := req.Description
	if description == "" {
		description = s.Gen.Description(req.Event)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"description":  description,
		"expectations": s.Gen.VolunteerExpectations(req.Event, description),
	})
}

func (s *Server) handleHistory(ctx *gin.Context) {
	if s.History == nil {
		respondError(ctx, http.StatusServiceUnavailable, "history_disabled", "history storage is not configured", nil)
		return
	}

	limit := 20
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			respondBadRequest(ctx, "limit must be an integer between 1 and 200", nil)
			return
		}
		limit = n
	}

	artifacts, err := s.History.List(limit)
	if err != nil {
		slog.Error("history list failed", "error", err)
		respondInternal(ctx, "failed to list history")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"artifacts": artifacts})
}

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Writer.Header().Set(requestIDHeader, id)
		ctx.Set("request_id", id)
		ctx.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		route := ctx.FullPath()
		if route == "" {
			route = ctx.Request.URL.Path
		}

		ctx.Next()

		reqID, _ := ctx.Get("request_id")
		slog.Info("http_request",
			"method", ctx.Request.Method,
			"route", route,
			"status", ctx.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", reqID,
		)
	}
}
