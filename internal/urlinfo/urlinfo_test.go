package urlinfo

import "testing"

// TestDescribe tests host detail extraction.
func TestDescribe(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected Info
	}{
		{
			name: "simple url",
			raw:  "http://example.com",
			expected: Info{
				Scheme:           "http",
				Host:             "example.com",
				RegisteredDomain: "example.com",
				PublicSuffix:     "com",
			},
		},
		{
			name: "userinfo hides real host",
			raw:  "http://paypal.com@evil.example.co.uk/login",
			expected: Info{
				Scheme:           "http",
				UserInfo:         "paypal.com",
				Host:             "evil.example.co.uk",
				RegisteredDomain: "example.co.uk",
				PublicSuffix:     "co.uk",
			},
		},
		{
			name: "no scheme",
			raw:  "www.example.org/path",
			expected: Info{
				Scheme:           "http",
				Host:             "www.example.org",
				RegisteredDomain: "example.org",
				PublicSuffix:     "org",
			},
		},
		{
			name: "punycode host is decoded",
			raw:  "https://xn--r8jz45g.jp/",
			expected: Info{
				Scheme:           "https",
				Host:             "xn--r8jz45g.jp",
				UnicodeHost:      "例え.jp",
				RegisteredDomain: "xn--r8jz45g.jp",
				PublicSuffix:     "jp",
			},
		},
		{
			name: "ip address has no domain",
			raw:  "http://192.168.0.1:8080/admin",
			expected: Info{
				Scheme: "http",
				Host:   "192.168.0.1",
			},
		},
		{
			name:     "blank input",
			raw:      "   ",
			expected: Info{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Describe(tc.raw); got != tc.expected {
				t.Errorf("Describe(%q) = %+v, expected %+v", tc.raw, got, tc.expected)
			}
		})
	}
}
