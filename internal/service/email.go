package service

import (
	"context"
	"net"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

// DNSResolver abstracts DNS lookups to simplify testing.
type DNSResolver interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}

// EmailCleaner normalizes and validates email addresses returned by the
// enrichment backend. MX verification is optional; it costs a DNS round trip
// per address.
type EmailCleaner struct {
	verifyMX bool
	resolver DNSResolver
}

// EmailCleanerOption configures optional dependencies.
type EmailCleanerOption func(*EmailCleaner)

// WithDNSResolver overrides the default DNS resolver.
func WithDNSResolver(resolver DNSResolver) EmailCleanerOption {
	return func(c *EmailCleaner) {
		if resolver != nil {
			c.resolver = resolver
		}
	}
}

// NewEmailCleaner builds a cleaner; verifyMX enables MX record checks.
func NewEmailCleaner(verifyMX bool, opts ...EmailCleanerOption) *EmailCleaner {
	c := &EmailCleaner{
		verifyMX: verifyMX,
		resolver: systemDNSResolver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean lowercases and trims the address, then validates syntax, domain shape
// and (when enabled) MX presence. It returns the normalized address and
// whether the address passed every check.
func (c *EmailCleaner) Clean(ctx context.Context, raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || !emailPattern.MatchString(email) {
		return "", false
	}

	parts := strings.SplitN(email, "@", 2)
	domain := parts[1]
	if !isDomainValid(domain) {
		return "", false
	}
	asciiDomain, err := idnaProfile.ToASCII(domain)
	if err != nil || asciiDomain == "" {
		return "", false
	}

	if c.verifyMX && !c.hasMXRecord(ctx, asciiDomain) {
		return "", false
	}
	return email, true
}

func (c *EmailCleaner) hasMXRecord(ctx context.Context, domain string) bool {
	if c.resolver == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	records, err := c.resolver.LookupMX(ctx, domain)
	return err == nil && len(records) > 0
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

type systemDNSResolver struct{}

func (systemDNSResolver) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	return net.DefaultResolver.LookupMX(ctx, domain)
}
