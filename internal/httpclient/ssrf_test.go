package httpclient

import (
	"net"
	"testing"
)

func TestValidateURL_SchemeWhitelist(t *testing.T) {
	config := &ClientConfig{Name: "c"}

	if err := validateURL("ftp://example.com/file", config); err == nil {
		t.Error("expected error for non-http(s) scheme")
	}
	if err := validateURL("https://example.com", config); err != nil {
		t.Errorf("unexpected error for https scheme: %v", err)
	}
}

func TestValidateURL_DomainAllowlist(t *testing.T) {
	config := &ClientConfig{Name: "c", AllowedDomains: []string{"example.com"}}

	if err := validateURL("https://example.com/path", config); err != nil {
		t.Errorf("expected allowed domain to pass, got %v", err)
	}
	if err := validateURL("https://sub.example.com/path", config); err != nil {
		t.Errorf("expected subdomain of allowed domain to pass, got %v", err)
	}
	if err := validateURL("https://evil.com/path", config); err == nil {
		t.Error("expected domain not in allowlist to fail")
	}
}

func TestValidateIP_BlockLocalhost(t *testing.T) {
	config := &ClientConfig{Name: "c", BlockLocalhost: true}
	if err := validateIP(net.ParseIP("127.0.0.1"), config); err == nil {
		t.Error("expected loopback to be blocked")
	}
	if err := validateIP(net.ParseIP("8.8.8.8"), config); err != nil {
		t.Errorf("unexpected error for public IP: %v", err)
	}
}

func TestValidateIP_BlockPrivateIPs(t *testing.T) {
	config := &ClientConfig{Name: "c", BlockPrivateIPs: true}
	for _, ip := range []string{"10.0.0.5", "172.16.0.5", "192.168.1.5"} {
		if err := validateIP(net.ParseIP(ip), config); err == nil {
			t.Errorf("expected private IP %s to be blocked", ip)
		}
	}
}

func TestValidateIP_BlockLinkLocal(t *testing.T) {
	config := &ClientConfig{Name: "c", BlockLinkLocal: true}
	if err := validateIP(net.ParseIP("169.254.1.1"), config); err == nil {
		t.Error("expected link-local IP to be blocked")
	}
}

func TestValidateIP_BlockCloudMetadata(t *testing.T) {
	config := &ClientConfig{Name: "c", BlockCloudMetadata: true}
	if err := validateIP(net.ParseIP("169.254.169.254"), config); err == nil {
		t.Error("expected cloud metadata IP to be blocked")
	}
}
