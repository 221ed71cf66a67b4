package siteqa

import (
	"net/url"
	"strings"
)

// NormalizeOrigin turns a bare host or full URL into an origin URL of the
// form scheme://host. Inputs without an http or https scheme get https.
// Path, query and fragment are discarded and the result is lowercase.
func NormalizeOrigin(host string) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", Errorf(EINVALID, "host required")
	}

	lower := strings.ToLower(host)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		host = "https://" + host
	}

	u, err := url.Parse(host)
	if err != nil {
		return "", Errorf(EINVALID, "invalid host %q: %v", host, err)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "invalid host %q: missing hostname", host)
	}

	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), nil
}
