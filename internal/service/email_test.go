package service

import (
	"context"
	"errors"
	"net"
	"testing"
)

type fakeResolver struct {
	records []*net.MX
	err     error
}

func (f fakeResolver) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	return f.records, f.err
}

func TestEmailCleaner_Clean(t *testing.T) {
	cleaner := NewEmailCleaner(false)

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, ok := cleaner.Clean(context.Background(), "  Jane.Doe@Acme.COM ")
		if !ok || email != "jane.doe@acme.com" {
			t.Fatalf("unexpected result: %q ok=%v", email, ok)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{"", "not-an-email", "jane@", "@acme.com", "jane@acme", "jane@-acme.com"} {
			if _, ok := cleaner.Clean(context.Background(), raw); ok {
				t.Fatalf("expected %q rejected", raw)
			}
		}
	})
}

func TestEmailCleaner_MXVerification(t *testing.T) {
	t.Run("accepts domain with mx records", func(t *testing.T) {
		cleaner := NewEmailCleaner(true, WithDNSResolver(fakeResolver{records: []*net.MX{{Host: "mx.acme.com"}}}))
		if _, ok := cleaner.Clean(context.Background(), "jane@acme.com"); !ok {
			t.Fatalf("expected address accepted")
		}
	})

	t.Run("rejects domain without mx records", func(t *testing.T) {
		cleaner := NewEmailCleaner(true, WithDNSResolver(fakeResolver{err: errors.New("no such host")}))
		if _, ok := cleaner.Clean(context.Background(), "jane@acme.com"); ok {
			t.Fatalf("expected address rejected")
		}
	})

	t.Run("disabled verification skips dns", func(t *testing.T) {
		cleaner := NewEmailCleaner(false, WithDNSResolver(fakeResolver{err: errors.New("must not be called")}))
		if _, ok := cleaner.Clean(context.Background(), "jane@acme.com"); !ok {
			t.Fatalf("expected address accepted without dns lookup")
		}
	})
}
