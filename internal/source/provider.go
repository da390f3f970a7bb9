package source

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for content source resolution.
var (
	ErrUnknownService    = errors.New("unknown content service")
	ErrUnknownSourceMode = errors.New("unknown data source mode")
	ErrMalformedSource   = errors.New("malformed data source config")
)

// RawBaseURL maps a hosting service to the raw-content base URL of the
// given repository and branch. The service is matched case-insensitively
// against a closed set; anything else is ErrUnknownService.
func RawBaseURL(service, name, branch string) (string, error) {
	switch strings.ToLower(service) {
	case "github":
		return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s", name, branch), nil
	case "gitee":
		return fmt.Sprintf("https://gitee.com/%s/raw/%s", name, branch), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownService, service)
	}
}
