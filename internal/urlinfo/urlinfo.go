// Package urlinfo derives display-only facts about a URL's host.
//
// Nothing here feeds the classifier. Reports show these details next to the
// score so a reader can see which domain a deceptive URL really points at,
// for example the host after an '@'. All work is offline string processing.
package urlinfo

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// Info holds host details of a URL. Fields are empty when they cannot be
// determined, e.g. for strings that are not URLs.
type Info struct {
	// Scheme is the URL scheme, lower-cased.
	Scheme string `json:"scheme,omitempty"`

	// UserInfo is the user name before '@', if any.
	UserInfo string `json:"userinfo,omitempty"`

	// Host is the host name without port as written.
	Host string `json:"host,omitempty"`

	// UnicodeHost is Host with punycode labels decoded.
	// It is empty when it equals Host.
	UnicodeHost string `json:"unicodeHost,omitempty"`

	// RegisteredDomain is the public suffix plus one label (eTLD+1).
	RegisteredDomain string `json:"registeredDomain,omitempty"`

	// PublicSuffix is the effective top-level domain.
	PublicSuffix string `json:"publicSuffix,omitempty"`
}

// Describe parses raw and returns its host details.
// URLs without a scheme are parsed as if they started with "http://".
func Describe(raw string) Info {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Info{}
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return Info{}
	}

	info := Info{
		Scheme: strings.ToLower(u.Scheme),
		Host:   u.Hostname(),
	}
	if u.User != nil {
		info.UserInfo = u.User.Username()
	}
	if info.Host == "" {
		return info
	}

	host := strings.ToLower(strings.TrimSuffix(info.Host, "."))
	if uh, err := idna.ToUnicode(host); err == nil && uh != host {
		info.UnicodeHost = uh
	}

	if isIP(host) {
		return info
	}

	ascii, err := idna.ToASCII(host)
	if err != nil {
		return info
	}
	if suffix, icann := publicsuffix.PublicSuffix(ascii); icann || strings.Contains(suffix, ".") {
		info.PublicSuffix = suffix
	}
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(ascii); err == nil {
		info.RegisteredDomain = etld1
	}
	return info
}

// isIP reports whether host is an IPv4 or bracket-less IPv6 literal.
func isIP(host string) bool {
	if strings.Contains(host, ":") {
		return true
	}
	for _, r := range host {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
