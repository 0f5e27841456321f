package health

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const checkTimeout = 5 * time.Second

type Status string

const (
	StatusHealthy Status = "healthy"
	// StatusStale marks a manifest edited on disk after it was loaded. The
	// service keeps answering from the loaded copy, so readiness holds.
	StatusStale     Status = "stale"
	StatusUnhealthy Status = "unhealthy"
)

type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ManifestCheckResult extends CheckResult with what the service is serving.
type ManifestCheckResult struct {
	CheckResult
	Path       string    `json:"path"`
	Deadlines  int       `json:"deadlines"`
	LoadedAt   time.Time `json:"loaded_at"`
	ModifiedAt time.Time `json:"modified_at,omitzero"`
}

type HealthStatus struct {
	Status   Status                 `json:"status"`
	Version  string                 `json:"version,omitempty"`
	Manifest *ManifestCheckResult   `json:"manifest,omitempty"`
	Checks   map[string]CheckResult `json:"checks,omitempty"`
}

// ManifestInfo describes the manifest loaded at startup.
type ManifestInfo struct {
	Path      string
	Deadlines int
	LoadedAt  time.Time
}

type Checker struct {
	redisClient redis.UniversalClient
	version     string
	manifest    ManifestInfo
	stat        func(string) (os.FileInfo, error)
}

// NewChecker builds a checker. A nil redisClient skips the Redis check, since
// Redis only backs warning de-duplication and window history.
func NewChecker(redisClient redis.UniversalClient, version string, manifest ManifestInfo) *Checker {
	return &Checker{
		redisClient: redisClient,
		version:     version,
		manifest:    manifest,
		stat:        os.Stat,
	}
}

// Check reports unhealthy when Redis does not answer or the manifest file is
// gone, and stale when the file changed after it was loaded.
func (c *Checker) Check(ctx context.Context) *HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	status := &HealthStatus{
		Status:   StatusHealthy,
		Version:  c.version,
		Manifest: c.checkManifest(),
		Checks:   make(map[string]CheckResult),
	}

	if status.Manifest.Status == StatusUnhealthy {
		status.Status = StatusUnhealthy
	}

	if c.redisClient != nil {
		result := c.checkRedis(checkCtx)
		status.Checks["redis"] = result
		if result.Status != StatusHealthy {
			status.Status = StatusUnhealthy
		}
	}

	return status
}

func (c *Checker) checkManifest() *ManifestCheckResult {
	result := &ManifestCheckResult{
		CheckResult: CheckResult{Status: StatusHealthy},
		Path:        c.manifest.Path,
		Deadlines:   c.manifest.Deadlines,
		LoadedAt:    c.manifest.LoadedAt,
	}

	info, err := c.stat(c.manifest.Path)
	if err != nil {
		result.Status = StatusUnhealthy
		result.Error = err.Error()
		return result
	}

	result.ModifiedAt = info.ModTime()
	if info.ModTime().After(c.manifest.LoadedAt) {
		result.Status = StatusStale
	}

	return result
}

func (c *Checker) checkRedis(ctx context.Context) CheckResult {
	start := time.Now()
	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		return CheckResult{Status: StatusUnhealthy, Error: err.Error()}
	}
	return CheckResult{Status: StatusHealthy, LatencyMs: time.Since(start).Milliseconds()}
}

func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler answers 503 only when the status is unhealthy.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if status.Status == StatusUnhealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, status)
	}
}
