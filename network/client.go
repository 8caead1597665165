// Package network provides the shared HTTP client.
package network

import (
	"net/http"
	"time"
)

// Client is shared by everything that talks to the network.
var Client = &http.Client{
	Timeout:   10 * time.Second,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 10 * time.Second
	return t
}
