// Package sysinfo reports the small slice of host state the settings screen
// shows: the primary LAN address and how long the process host has been up.
package sysinfo

import (
	"net"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

// Host implements the render dispatcher's host-info source.
type Host struct{}

// LocalIP returns the host's primary non-loopback IPv4 address, or "" when
// no interface qualifies.
func (Host) LocalIP() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if isVirtualNIC(iface.Name) {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipNet.IP.To4(); ip4 != nil {
				return ip4.String()
			}
		}
	}
	return ""
}

// Uptime reports how long the host has been up. ok is false when the
// platform query fails.
func (Host) Uptime() (time.Duration, bool) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// isVirtualNIC filters container and VM bridge interfaces so the settings
// screen shows the address a user can actually reach.
func isVirtualNIC(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range []string{"veth", "br-", "docker", "cni", "flannel", "vxlan", "virbr", "tailscale", "utun", "wg"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
