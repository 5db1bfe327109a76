package validate

import "net"

// classifyServers splits backend server entries into literal IPv4 addresses
// and domain names, preserving input order. Anything that is not a valid
// dotted-quad is treated as an FQDN.
func classifyServers(servers []string) []Server {
	out := make([]Server, 0, len(servers))
	for _, item := range servers {
		if isIPv4(item) {
			out = append(out, Server{IPAddress: item})
		} else {
			out = append(out, Server{FQDN: item})
		}
	}
	return out
}

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}
