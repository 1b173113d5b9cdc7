package accessgate

import (
	"net"
	"os"
	"strings"
)

// ClientIP picks the caller's address: first X-Forwarded-For hop, then
// X-Real-IP, then the connection address, then the host lookup.
func ClientIP(header func(string) string, remote string, lookup func() string) string {
	if xff := header("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(header("X-Real-IP")); xri != "" {
		return xri
	}
	if remote = strings.TrimSpace(remote); remote != "" {
		if host, _, err := net.SplitHostPort(remote); err == nil {
			return host
		}
		return remote
	}
	if lookup != nil {
		if ip := lookup(); ip != "" {
			return ip
		}
	}
	return "127.0.0.1"
}

// HostIP resolves the local hostname to its first address.
func HostIP() string {
	name, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	addrs, err := net.LookupHost(name)
	if err != nil || len(addrs) == 0 {
		return "127.0.0.1"
	}
	return addrs[0]
}

// OutboundIP is the private address of the interface used for outbound
// traffic. No packet is sent.
func OutboundIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "127.0.0.1"
}

type Environment struct {
	AppEnv          string
	CloudDeployment bool
	OutboundIP      func() string
}

// DetectLocal reports whether the portal runs on a developer machine.
func DetectLocal(env Environment) bool {
	if env.CloudDeployment {
		return false
	}
	if env.OutboundIP != nil && isLoopback(env.OutboundIP()) {
		return true
	}
	return strings.EqualFold(env.AppEnv, "development")
}
