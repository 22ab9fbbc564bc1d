package hawk

import (
	"net"
	"net/http"
	"strconv"
	"strings"
)

const (
	HeaderAuthorization = "Authorization"

	defaultHTTPPort  = 80
	defaultHTTPSPort = 443
)

// Request holds the parts of an HTTP request covered by the MAC.
type Request struct {
	Method        string
	Resource      string
	Host          string
	Port          int
	Authorization string
}

// NewRequest describes an incoming server request.
func NewRequest(r *http.Request) Request {
	defaultPort := defaultHTTPPort
	if r.TLS != nil {
		defaultPort = defaultHTTPSPort
	}

	host, port := splitHostPort(r.Host, defaultPort)
	return Request{
		Method:        r.Method,
		Resource:      r.URL.RequestURI(),
		Host:          host,
		Port:          port,
		Authorization: r.Header.Get(HeaderAuthorization),
	}
}

// NewClientRequest describes an outgoing client request.
func NewClientRequest(r *http.Request) Request {
	defaultPort := defaultHTTPPort
	if strings.EqualFold(r.URL.Scheme, "https") {
		defaultPort = defaultHTTPSPort
	}

	hostPort := r.Host
	if hostPort == "" {
		hostPort = r.URL.Host
	}

	host, port := splitHostPort(hostPort, defaultPort)
	return Request{
		Method:        r.Method,
		Resource:      r.URL.RequestURI(),
		Host:          host,
		Port:          port,
		Authorization: r.Header.Get(HeaderAuthorization),
	}
}

func splitHostPort(hostPort string, defaultPort int) (string, int) {
	host, portValue, err := net.SplitHostPort(hostPort)
	if err != nil {
		return hostPort, defaultPort
	}

	port, err := strconv.Atoi(portValue)
	if err != nil {
		return host, defaultPort
	}

	return host, port
}
