package endpoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  - name: port_rpc
    ip: 127.0.0.1
    port: 5005
    protocols: [http]
  - name: port_ws
    ip: 0.0.0.0
    port: 6006
    protocols: [ws, ws2]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Server, 2)
	assert.Equal(t, "port_ws", cfg.Server[1].Name)
	assert.Equal(t, uint16(6006), cfg.Server[1].Port)
	assert.Equal(t, []string{"ws", "ws2"}, cfg.Server[1].Protocols)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolve_PicksFirstMatchingPort(t *testing.T) {
	cfg := &Config{Server: []PortConfig{
		{Name: "port_rpc", IP: "127.0.0.1", Port: 5005, Protocols: []string{"http"}},
		{Name: "port_ws", IP: "10.0.0.4", Port: 6006, Protocols: []string{"ws"}},
		{Name: "port_ws2", IP: "10.0.0.4", Port: 6007, Protocols: []string{"ws2"}},
	}}

	ep, err := Resolve(cfg, WS)
	require.NoError(t, err)
	assert.Equal(t, Endpoint{IP: "10.0.0.4", Port: 6006}, ep)

	ep, err = Resolve(cfg, WS2)
	require.NoError(t, err)
	assert.Equal(t, Endpoint{IP: "10.0.0.4", Port: 6007}, ep)
}

func TestResolve_RewritesWildcardToLoopback(t *testing.T) {
	cfg := &Config{Server: []PortConfig{
		{Name: "port_ws", IP: "0.0.0.0", Port: 6006, Protocols: []string{"ws"}},
	}}

	ep, err := Resolve(cfg, WS)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ep.IP)
}

func TestResolve_EmptyIPDefaultsToLoopback(t *testing.T) {
	cfg := &Config{Server: []PortConfig{
		{Name: "port_ws", Port: 6006, Protocols: []string{"ws"}},
	}}

	ep, err := Resolve(cfg, WS)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ep.IP)
}

func TestResolve_NoMatchingPort(t *testing.T) {
	cfg := &Config{Server: []PortConfig{
		{Name: "port_rpc", IP: "127.0.0.1", Port: 5005, Protocols: []string{"http"}},
	}}

	_, err := Resolve(cfg, WS)
	assert.ErrorIs(t, err, ErrNoEndpoint)
}

func TestEndpoint_AddrAndURL(t *testing.T) {
	ep := Endpoint{IP: "127.0.0.1", Port: 6006}
	assert.Equal(t, "127.0.0.1:6006", ep.Addr())
	assert.Equal(t, "ws://127.0.0.1:6006/", ep.URL())

	// IPv6 hosts get bracketed.
	ep = Endpoint{IP: "::1", Port: 6006}
	assert.Equal(t, "[::1]:6006", ep.Addr())
}
