package ratelimit

import (
	"testing"
	"time"
)

func TestAllow_BurstThenDeny(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 2)

	if !l.Allow("1.2.3.4") || !l.Allow("1.2.3.4") {
		t.Fatal("burst requests should be allowed")
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("request beyond burst should be denied")
	}
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 1)

	if !l.Allow("1.2.3.4") {
		t.Fatal("first client should be allowed")
	}
	if !l.Allow("5.6.7.8") {
		t.Fatal("second client must not share the first client's bucket")
	}
}
