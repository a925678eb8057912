package entities

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxUpstreamMessageLen = 300

// ValidationError is raised for malformed or missing input. Message is safe to
// show to the end user.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ConfigurationError means a component is missing a required setting.
// Key names the setting, never its value.
type ConfigurationError struct {
	Component string
	Key       string
}

func NewConfigurationError(component, key string) *ConfigurationError {
	return &ConfigurationError{Component: component, Key: key}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not configured: missing %s", e.Component, e.Key)
}

// GatewayError wraps any upstream failure: non-2xx answers, transport errors
// and timeouts. A GatewayError with Timeout set is the TimeoutError of the
// taxonomy.
type GatewayError struct {
	Provider   string
	Operation  string
	StatusCode int
	Body       string
	Timeout    bool
	Err        error
}

func (e *GatewayError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s failed", e.Provider, e.Operation)
	if e.Timeout {
		b.WriteString(": timeout")
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": upstream status %d", e.StatusCode)
	}
	if msg := SanitizeUpstreamMessage(e.Body); msg != "" {
		fmt.Fprintf(&b, ": %s", msg)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is an upstream timeout.
func IsTimeout(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr) && gwErr.Timeout
}

// SanitizeUpstreamMessage flattens and truncates an upstream body so it can be
// logged and returned to callers.
func SanitizeUpstreamMessage(body string) string {
	msg := strings.Join(strings.Fields(body), " ")
	if len(msg) > maxUpstreamMessageLen {
		cut := maxUpstreamMessageLen
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut] + "..."
	}
	return msg
}
