package security

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// OriginPolicy CORS 白名单，配置热更新时整体替换
type OriginPolicy struct {
	origins atomic.Value // map[string]bool
}

func NewOriginPolicy(allowedOrigins []string) *OriginPolicy {
	p := &OriginPolicy{}
	p.Set(allowedOrigins)
	return p
}

func (p *OriginPolicy) Set(allowedOrigins []string) {
	originSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originSet[o] = true
	}
	p.origins.Store(originSet)
}

func (p *OriginPolicy) Allowed(origin string) bool {
	set, _ := p.origins.Load().(map[string]bool)
	return set["*"] || set[origin]
}

// CORS 中间件 仅允许白名单中的Origin，支持Credentials
func CORS(policy *OriginPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && policy.Allowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Secure 中间件
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

// visitor 包装限流器和最后活跃时间，用于定期清理
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 按IP限流，参数可在运行时调整
type RateLimiter struct {
	mu          sync.Mutex
	store       map[string]*visitor
	limit       rate.Limit
	burst       int
	window      time.Duration
	stopCleanup chan struct{}
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	l := &RateLimiter{
		store:       make(map[string]*visitor),
		stopCleanup: make(chan struct{}),
	}
	l.Update(maxRequests, window)
	return l
}

// Update 修改限流参数，已有的访客记录会被清空
func (l *RateLimiter) Update(maxRequests int, window time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.limit = rate.Every(window / time.Duration(maxRequests))
	l.burst = maxRequests
	l.window = window
	l.store = make(map[string]*visitor)
}

func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	v, exists := l.store[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.store[key] = v
	}
	v.lastSeen = time.Now()
	l.mu.Unlock()

	return v.limiter.Allow()
}

// StartCleanup 定期清理过期条目，直到 Stop 被调用
func (l *RateLimiter) StartCleanup() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.mu.Lock()
				expiry := l.window * 3
				if expiry < time.Minute {
					expiry = time.Minute
				}
				for ip, v := range l.store {
					if time.Since(v.lastSeen) > expiry {
						delete(l.store, ip)
					}
				}
				l.mu.Unlock()
			case <-l.stopCleanup:
				return
			}
		}
	}()
}

func (l *RateLimiter) Stop() {
	close(l.stopCleanup)
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"code": http.StatusTooManyRequests, "message": "too many requests"})
			return
		}
		c.Next()
	}
}
