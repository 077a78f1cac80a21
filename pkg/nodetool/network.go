package nodetool

import (
	"errors"
	"net"
	"os"
	"strings"
)

var errMissingLocalIP = errors.New("could not find a local ip")

// GetLocalIP returns the first non-loopback device
func GetLocalIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}
	return "", errMissingLocalIP
}

// LocalFQDN returns the fully qualified domain name of this host.
// It falls back to the plain hostname, then the first local ip and finally "localhost".
func LocalFQDN() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		if ip, err := GetLocalIP(); err == nil {
			return ip
		}
		return "localhost"
	}

	if cname, err := net.LookupCNAME(hostname); err == nil {
		if fqdn := strings.TrimSuffix(cname, "."); fqdn != "" {
			return fqdn
		}
	}
	return hostname
}
