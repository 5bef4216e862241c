package middleware

import (
	"net/http"
	"sync"
	"time"
	"ufsbd-cms-server/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTTL         = 3 * time.Minute
	visitorCleanupInterval = time.Minute
)

// IPRateLimiter 按客户端 IP 维护令牌桶，长时间未出现的 IP 会被回收
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPRateLimiter() *IPRateLimiter {
	return &IPRateLimiter{visitors: make(map[string]*visitor), now: time.Now}
}

func NewIPRateLimiter() *IPRateLimiter {
	l := newIPRateLimiter()
	go l.cleanupLoop()
	return l
}

// Allow 每次按传入的速率与突发量调整该 IP 的令牌桶，配置热更新后立即生效
func (l *IPRateLimiter) Allow(ip string, r rate.Limit, burst int) bool {
	l.mu.Lock()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r, burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = l.now()
	if v.limiter.Limit() != r {
		v.limiter.SetLimit(r)
	}
	if v.limiter.Burst() != burst {
		v.limiter.SetBurst(burst)
	}
	l.mu.Unlock()

	return v.limiter.Allow()
}

// evictIdle 删除超过 ttl 未访问的 IP，返回删除数量
func (l *IPRateLimiter) evictIdle(ttl time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-ttl)
	removed := 0
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
			removed++
		}
	}
	return removed
}

func (l *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(visitorCleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		l.evictIdle(visitorIdleTTL)
	}
}

// LimitKind 限流分组，每组共用一个 IPRateLimiter
type LimitKind int

const (
	LimitAuth LimitKind = iota
	LimitUpload
)

func limitsFor(kind LimitKind) (rate.Limit, int) {
	cfg := config.Get().RateLimit
	if kind == LimitUpload {
		return rate.Limit(cfg.UploadRPS), cfg.UploadBurst
	}
	return rate.Limit(cfg.AuthRPS), cfg.AuthBurst
}

// RateLimitMiddleware 按客户端 IP 限流，参数每次请求从配置读取
func RateLimitMiddleware(kind LimitKind) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		if !config.Get().RateLimit.Enabled {
			c.Next()
			return
		}
		once.Do(func() { limiter = NewIPRateLimiter() })

		r, burst := limitsFor(kind)
		if !limiter.Allow(c.ClientIP(), r, burst) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Trop de requêtes, veuillez réessayer plus tard"})
			return
		}
		c.Next()
	}
}
