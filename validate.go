package urlinfo

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const maxPort = 65535

// urlPattern restricts accepted URLs to http(s) with a dotted hostname or a
// dotted-quad IPv4 host.
var urlPattern = regexp.MustCompile(`(?i)^https?://` +
	`(([a-z\d]([a-z\d-]*[a-z\d])?\.)+[a-z]{2,}|(\d{1,3}\.){3}\d{1,3})` +
	`(:\d+)?` +
	`(/[-a-z\d%_.~+]*)*` +
	`(\?[;&a-z\d%_.~+=-]*)?` +
	`(#[-a-z\d_]*)?$`)

// ValidateURL reports whether candidate is an acceptable source URL.
func ValidateURL(candidate string) bool {
	return CheckURL(candidate) == nil
}

// CheckURL returns an EINVALID error describing why candidate is not an
// acceptable source URL, or nil when it is.
func CheckURL(candidate string) error {
	if strings.TrimSpace(candidate) == "" {
		return Errorf(EINVALID, "url required")
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return Errorf(EINVALID, "malformed url %q", candidate)
	}
	if u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "url %q must be absolute", candidate)
	}
	if p := u.Port(); p != "" {
		if n, err := strconv.Atoi(p); err != nil || n > maxPort {
			return Errorf(EINVALID, "url %q has an invalid port", candidate)
		}
	}

	if !urlPattern.MatchString(candidate) {
		return Errorf(EINVALID, "url %q must be an http(s) address with a dotted hostname or IPv4 host", candidate)
	}
	return nil
}
