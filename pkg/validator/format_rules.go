package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// Email accepts RFC 5322 addresses with a dotted domain, as used on the web.
func Email[S ~string]() Rule[S] {
	return newRule("email", "must be a valid email address", ErrInvalidFormat, func(v S) bool {
		return isEmail(string(v))
	})
}

// URL accepts absolute URLs with a scheme and a host.
func URL[S ~string]() Rule[S] {
	return newRule("url", "must be a valid URL", ErrInvalidFormat, func(v S) bool {
		u, ok := parseURL(string(v))
		return ok && u.Scheme != "" && u.Host != ""
	})
}

// URLWithScheme accepts URLs whose scheme is one of schemes.
func URLWithScheme[S ~string](schemes ...string) Rule[S] {
	message := fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", "))
	return newRule("url_scheme", message, ErrInvalidFormat, func(v S) bool {
		u, ok := parseURL(string(v))
		return ok && u.Host != "" && slices.Contains(schemes, u.Scheme)
	})
}

func parseURL(value string) (*url.URL, bool) {
	if strings.TrimSpace(value) == "" || strings.ContainsAny(value, " \t\r\n") {
		return nil, false
	}
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return nil, false
	}
	return u, true
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
