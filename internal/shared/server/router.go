package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hunterai-backend/internal/applications"
	"hunterai-backend/internal/ats"
	"hunterai-backend/internal/jobs"
	"hunterai-backend/internal/resumes"
	"hunterai-backend/internal/shared/config"
	"hunterai-backend/internal/shared/server/middleware"
	"hunterai-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config             config.Config
	ResumeHandler      *resumes.Handler
	JobHandler         *jobs.Handler
	ATSHandler         *ats.Handler
	ApplicationHandler *applications.Handler
}

const analyzeGroup = "ANALYZE"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				// Scraping hits third-party sites; keep it slow.
				analyzeGroup: {Rate: 1, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/job-descriptions/analyze" {
					return analyzeGroup
				}
				return ""
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.ResumeHandler.RegisterRoutes(api)
	deps.JobHandler.RegisterRoutes(api)
	deps.ATSHandler.RegisterRoutes(api)
	deps.ApplicationHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
