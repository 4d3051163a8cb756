package utils

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		xff        string
		realIP     string
		trustProxy bool
		want       string
	}{
		{name: "remote addr", remote: "10.0.0.1:5555", want: "10.0.0.1"},
		{name: "ignores xff without trust", remote: "10.0.0.1:5555", xff: "1.2.3.4", want: "10.0.0.1"},
		{name: "first xff", remote: "10.0.0.1:5555", xff: "1.2.3.4, 5.6.7.8", trustProxy: true, want: "1.2.3.4"},
		{name: "real ip fallback", remote: "10.0.0.1:5555", realIP: "9.9.9.9", trustProxy: true, want: "9.9.9.9"},
		{name: "ipv6 remote", remote: "[::1]:8080", want: "::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"127.0.0.1", " 10.0.0.0/8 ", "bogus", ""})
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	tests := map[string]bool{
		"127.0.0.1":       true,
		"10.20.30.40":     true,
		"::ffff:10.1.1.1": true,
		"192.168.1.1":     false,
		"not-an-ip":       false,
	}
	for ip, want := range tests {
		if got := m.Allow(ip); got != want {
			t.Errorf("Allow(%q) = %v, want %v", ip, got, want)
		}
	}
	if !NewIPMatcher(nil).IsEmpty() {
		t.Error("empty list should give an empty matcher")
	}
}
