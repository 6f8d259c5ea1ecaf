package sysinfo

import (
	"net"
	"testing"
)

func TestLocalIPIsParseable(t *testing.T) {
	ip := Host{}.LocalIP()
	if ip == "" {
		t.Skip("no qualifying interface on this host")
	}
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.To4() == nil {
		t.Errorf("LocalIP returned %q, not an IPv4 address", ip)
	}
	if parsed.IsLoopback() {
		t.Errorf("LocalIP returned loopback %q", ip)
	}
}

func TestUptime(t *testing.T) {
	up, ok := Host{}.Uptime()
	if !ok {
		t.Skip("uptime unavailable on this platform")
	}
	if up <= 0 {
		t.Errorf("uptime = %v", up)
	}
}

func TestIsVirtualNIC(t *testing.T) {
	virtual := []string{"veth0a1b", "br-567", "docker0", "tailscale0", "wg0", "virbr0"}
	for _, name := range virtual {
		if !isVirtualNIC(name) {
			t.Errorf("%s not classified as virtual", name)
		}
	}
	physical := []string{"eth0", "enp3s0", "wlan0", "en0"}
	for _, name := range physical {
		if isVirtualNIC(name) {
			t.Errorf("%s wrongly classified as virtual", name)
		}
	}
}
