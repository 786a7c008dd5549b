package config

import (
	"strconv"
	"time"
)

// BackendConfig describes how to reach the dealership REST backend.
// All persistence, auth token issuance and AI handling live behind it.
type BackendConfig interface {
	GetBackendURL() string
	GetRequestTimeout() time.Duration
}

type Backend struct{}

var _ BackendConfig = Backend{}

func (Backend) GetBackendURL() string {
	return GetEnv("BACKEND_URL", "http://localhost:8000")
}

func (Backend) GetRequestTimeout() time.Duration {
	seconds, err := strconv.Atoi(GetEnv("REQUEST_TIMEOUT_SECONDS", "15"))
	if err != nil || seconds <= 0 {
		seconds = 15
	}
	return time.Duration(seconds) * time.Second
}
