package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"ventaslive/internal/apierror"
)

// ventana tracks request counts per IP within a sliding window.
type ventana struct {
	count int
	fin   time.Time
	mu    sync.Mutex
}

type limitador struct {
	limite  int
	periodo time.Duration
	mensaje string

	mu  sync.Mutex
	ips map[string]*ventana
}

func nuevoLimitador(limite int, periodo time.Duration, mensaje string) *limitador {
	return &limitador{
		limite:  limite,
		periodo: periodo,
		mensaje: mensaje,
		ips:     make(map[string]*ventana),
	}
}

func (l *limitador) permitir(ip string) bool {
	l.mu.Lock()
	v, ok := l.ips[ip]
	if !ok {
		v = &ventana{}
		l.ips[ip] = v
	}
	l.mu.Unlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	now := time.Now()
	if now.After(v.fin) {
		v.count = 0
		v.fin = now.Add(l.periodo)
	}
	v.count++
	return v.count <= l.limite
}

func (l *limitador) purgar(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	purgados := 0
	for ip, v := range l.ips {
		v.mu.Lock()
		if now.After(v.fin) {
			delete(l.ips, ip)
			purgados++
		}
		v.mu.Unlock()
	}
	return purgados
}

func (l *limitador) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.permitir(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

var (
	limitadorLogin = nuevoLimitador(20, time.Minute,
		"Demasiados intentos de inicio de sesión. Intente en 1 minuto.")
	limitadorAPI = nuevoLimitador(300, time.Minute,
		"Demasiadas solicitudes. Intente nuevamente en un momento.")
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return limitadorLogin.handler()
}

// RateLimiter is the general API limiter: 300 requests per minute per IP.
func RateLimiter() gin.HandlerFunc {
	return limitadorAPI.handler()
}

// Expired window entries are purged periodically so IPs that never return do
// not accumulate.
const purgeInterval = 5 * time.Minute

func init() {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			n := limitadorLogin.purgar(now) + limitadorAPI.purgar(now)
			if n > 0 {
				log.Debug().Int("purged", n).Msg("rate limiter windows purged")
			}
		}
	}()
}
