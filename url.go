package linkwalk

import (
	"net/url"
	"strings"
)

// Normalize resolves raw against base into an absolute, comparable URL.
//
// An absolute raw is used as-is; anything else is resolved as a relative
// reference against base. Scheme and host are lowercased, the fragment is
// dropped and an empty http(s) path becomes "/", so two links to the same
// resource normalize to the same string.
func Normalize(base *url.URL, raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, Errorf(EINVALID, "empty URL")
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return nil, Errorf(EINVALID, "malformed URL %q: %v", raw, err)
	}

	var u *url.URL
	switch {
	case ref.IsAbs():
		u = ref
	case base != nil:
		u = base.ResolveReference(ref)
	default:
		return nil, Errorf(EINVALID, "relative URL %q without base", raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""

	if isHTTP(u.Scheme) {
		if u.Host == "" {
			return nil, Errorf(EINVALID, "URL %q has no host", raw)
		}
		if u.Path == "" {
			u.Path = "/"
		}
	}

	return u, nil
}

// ClassifyScheme returns nil if u may be fetched. Plain http is always
// admitted; https only when allowHTTPS is set. Any other scheme is rejected
// with EUNSUPPORTED.
func ClassifyScheme(u *url.URL, allowHTTPS bool) error {
	switch u.Scheme {
	case "http":
		return nil
	case "https":
		if allowHTTPS {
			return nil
		}
	}
	return Errorf(EUNSUPPORTED, "unsupported scheme %q in %s", u.Scheme, u.String())
}

func isHTTP(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
