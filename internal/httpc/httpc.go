package httpc

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// Httpc builds resty clients for the AWX executor.
type Httpc struct {
	TLSConfig *tls.Config
	Timeout   time.Duration
}

// New returns a resty.Client configured according to the receiver's settings.
// Defaults: MinVersion TLS1.2 when MinVersion is zero (AWX installations
// frequently terminate TLS behind older proxies), no timeout when Timeout is zero.
func (h *Httpc) New() *resty.Client {
	c := resty.New()
	if h.Timeout > 0 {
		c.SetTimeout(h.Timeout)
	}
	cfg := h.TLSConfig
	if cfg == nil {
		return c
	}
	if cfg.MinVersion == 0 {
		cfg.MinVersion = tls.VersionTLS12
	}
	c.SetTLSClientConfig(cfg)
	return c
}
