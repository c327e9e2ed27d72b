package proxy

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"data-studio/core/logger"

	"github.com/gofiber/fiber/v2"
	fiberproxy "github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Target is a parsed backend origin.
type Target struct {
	Scheme string
	Host   string
}

// ParseTarget validates an origin such as http://localhost:5000.
func ParseTarget(raw string) (Target, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Target{}, fmt.Errorf("invalid proxy target %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Target{}, fmt.Errorf("invalid proxy target %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return Target{}, fmt.Errorf("invalid proxy target %q: host is required", raw)
	}
	if u.Path != "" && u.Path != "/" {
		return Target{}, fmt.Errorf("invalid proxy target %q: must be an origin without path", raw)
	}
	return Target{Scheme: u.Scheme, Host: u.Host}, nil
}

// URL returns the target URL for a request URI (path plus query).
func (t Target) URL(requestURI string) string {
	return t.Scheme + "://" + t.Host + requestURI
}

// Register forwards every request under cfg.Prefix to cfg.Target. The path and
// query are kept; the Host header becomes the target host.
func Register(r fiber.Router, cfg Config, l *zap.Logger) error {
	if l == nil {
		l = zap.NewNop()
	}
	target, err := ParseTarget(cfg.Target)
	if err != nil {
		return err
	}
	prefix := "/" + strings.Trim(cfg.Prefix, "/")
	if prefix == "/" {
		return fmt.Errorf("proxy prefix must not be the root")
	}

	h := Handler(target, time.Duration(cfg.TimeoutSeconds)*time.Second, l)
	r.All(prefix, h)
	r.All(prefix+"/*", h)

	l.Info("Proxy enabled", zap.String("prefix", prefix), zap.String("target", target.Scheme+"://"+target.Host))
	return nil
}

// Handler returns the forwarding handler.
func Handler(target Target, timeout time.Duration, l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rl := logger.WithRayID(l, c)
		// RequestURI is path plus query, also for absolute-form request targets
		addr := target.URL(string(c.Request().URI().RequestURI()))
		c.Request().Header.SetHost(target.Host)

		var err error
		if timeout > 0 {
			err = fiberproxy.DoTimeout(c, addr, timeout)
		} else {
			err = fiberproxy.Do(c, addr)
		}
		if err != nil {
			rl.Warn("Proxy request failed", zap.String("target", addr), zap.Error(err))
			if errors.Is(err, fasthttp.ErrTimeout) {
				return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"error": "backend timed out"})
			}
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "backend unavailable"})
		}
		return nil
	}
}
