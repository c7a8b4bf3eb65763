// Package web gin server
package web

import (
	"net/http"

	ginMw "github.com/Laisky/gin-middlewares/v7"
	gconfig "github.com/Laisky/go-config/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/controller"
	"github.com/Laisky/laisky-portfolio-api/library/log"
)

const headerRequestID = "X-Request-Id"

// NewServer build the gin engine with every middleware and route mounted.
func NewServer(logger glog.Logger, ctl *controller.Portfolio, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	server := gin.New()
	server.Use(
		gin.Recovery(),
		ginMw.NewLoggerMiddleware(
			ginMw.WithLoggerMwColored(),
			ginMw.WithLevel(logger.Level().String()),
			ginMw.WithLogger(logger.Named("gin")),
		),
		requestID,
		allowCORS,
	)

	if err := ginMw.EnableMetric(server); err != nil {
		logger.Panic("enable metric server", zap.Error(err))
	}

	server.Any("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world")
	})

	ctl.RegisterRoutes(server, debug)
	return server
}

// RunServer serve until the listener fails.
func RunServer(addr string, server *gin.Engine) {
	log.Logger.Info("listening on http", zap.String("addr", addr))
	log.Logger.Panic("httpServer exit", zap.Error(server.Run(addr)))
}

// requestID tag every request, honoring an id supplied by the caller.
func requestID(ctx *gin.Context) {
	rid := ctx.Request.Header.Get(headerRequestID)
	if rid == "" {
		rid = uuid.NewString()
	}

	ctx.Header(headerRequestID, rid)
	ctx.Set("request_id", rid)
	ctx.Next()
}

func allowCORS(ctx *gin.Context) {
	origin := ctx.Request.Header.Get("Origin")
	if origin == "" {
		ctx.Next()
		return
	}

	allowed := gconfig.Shared.GetStringSlice("settings.allowed_origins")
	allowedOrigin := ""
	if len(allowed) == 0 {
		allowedOrigin = origin
	} else {
		for _, o := range allowed {
			if o == origin {
				allowedOrigin = origin
				break
			}
		}
	}

	if allowedOrigin == "" {
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
		return
	}

	ctx.Header("Access-Control-Allow-Origin", allowedOrigin)
	ctx.Header("Access-Control-Allow-Credentials", "true")
	ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS, HEAD")
	ctx.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, Origin, X-Requested-With")
	ctx.Header("Access-Control-Max-Age", "86400")
	ctx.Header("Vary", "Origin")

	if ctx.Request.Method == http.MethodOptions {
		ctx.AbortWithStatus(http.StatusNoContent)
		return
	}

	ctx.Next()
}
