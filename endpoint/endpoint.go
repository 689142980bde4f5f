// Package endpoint resolves a server configuration to a single WebSocket
// address. A configuration lists the ports a server opens and which
// protocols each one speaks; the resolver picks the first port speaking the
// requested variant and rewrites wildcard bind addresses to loopback so the
// result is dialable.
package endpoint

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"strconv"
)

// Variant selects which WebSocket protocol flavor to resolve.
type Variant string

const (
	WS  Variant = "ws"
	WS2 Variant = "ws2"
)

// ErrNoEndpoint is returned when no configured port speaks the requested
// protocol variant.
var ErrNoEndpoint = errors.New("endpoint: no websocket port configured")

// Endpoint is one resolved address and port, immutable once resolved.
type Endpoint struct {
	IP   string
	Port uint16
}

// Addr returns the endpoint as a dialable "host:port" string.
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.IP, strconv.Itoa(int(e.Port)))
}

// URL returns the WebSocket URL for the endpoint.
func (e Endpoint) URL() string {
	return fmt.Sprintf("ws://%s/", e.Addr())
}

// Resolve scans the configured server ports in order and returns the first
// one speaking the requested variant. A wildcard bind address (or none at
// all) resolves to loopback.
func Resolve(cfg *Config, v Variant) (Endpoint, error) {
	for _, p := range cfg.Server {
		if !slices.Contains(p.Protocols, string(v)) {
			continue
		}
		ip := p.IP
		if ip == "" || ip == "0.0.0.0" {
			ip = "127.0.0.1"
		}
		return Endpoint{IP: ip, Port: p.Port}, nil
	}
	return Endpoint{}, ErrNoEndpoint
}
