package rateLimitMiddleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	metricsMiddleware "github.com/gmaschi/go-recipes-api/internal/controllers/middlewares/metrics"
	"github.com/gmaschi/go-recipes-api/pkg/tools/parseErrors"
	"golang.org/x/time/rate"
)

// visitorTTL is how long an idle client keeps its limiter
const visitorTTL = 10 * time.Minute

var errTooManyRequests = errors.New("request was throttled, try again later")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter allows r requests per second with the given burst for every client IP
func NewRateLimiter(r float64, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(r),
		burst:    burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.cleanup(now)

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// cleanup drops idle visitors. Callers hold rl.mu.
func (rl *RateLimiter) cleanup(now time.Time) {
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, ip)
		}
	}
}

// Limit rejects requests over the per-IP budget with 429
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		limiter := rl.getLimiter(ctx.ClientIP())

		reservation := limiter.Reserve()
		if !reservation.OK() {
			rl.reject(ctx, time.Second)
			return
		}
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			rl.reject(ctx, delay)
			return
		}

		ctx.Next()
	}
}

func (rl *RateLimiter) reject(ctx *gin.Context, retryAfter time.Duration) {
	metricsMiddleware.RateLimitRejects.Inc()
	ctx.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	ctx.AbortWithStatusJSON(http.StatusTooManyRequests, parseErrors.ErrorResponse(errTooManyRequests))
}
