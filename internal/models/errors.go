package models

import "fmt"

// ConfigError is returned when a required setting is missing or malformed.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

// TransportError wraps a network failure talking to the provider or the cache store.
type TransportError struct {
	Op     string
	Target string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError is a non-2xx answer from the weather provider.
type UpstreamError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("weather provider returned %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("weather provider returned %s", e.Status)
}

// Decode sources.
const (
	SourceUpstream = "upstream"
	SourceCache    = "cache"
)

// DecodeError means a provider body or a cached payload did not parse into a WeatherResult.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s payload: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
