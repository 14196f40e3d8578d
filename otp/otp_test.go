package otp

import (
	"context"
	"strconv"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatal(err)
		}

		if len(code) != 6 {
			t.Fatalf("expected a 6 digit code, got %q", code)
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d is outside [100000, 999999]", n)
		}
	}
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	now := time.Now()
	service := NewService(NewMemoryStore())
	service.now = func() time.Time {
		return now
	}

	code, expiresAt, err := service.Issue(ctx, "donor@thelifesavers.in")
	if err != nil {
		t.Fatal(err)
	}
	if expiresAt != now.Add(Validity) {
		t.Fatalf("expected expiry %v, got %v", now.Add(Validity), expiresAt)
	}

	args := []struct {
		name     string
		identity string
		code     string
		at       time.Duration
		valid    bool
	}{
		{name: "wrong code", identity: "donor@thelifesavers.in", code: "000000", at: time.Minute, valid: false},
		{name: "unknown identity", identity: "nobody@thelifesavers.in", code: code, at: time.Minute, valid: false},
		{name: "just before expiry", identity: "donor@thelifesavers.in", code: code, at: 9*time.Minute + 59*time.Second, valid: true},
	}

	for _, arg := range args {
		service.now = func() time.Time {
			return now.Add(arg.at)
		}

		valid, err := service.Verify(ctx, arg.identity, arg.code)
		if err != nil {
			t.Fatal(err)
		}
		if valid != arg.valid {
			t.Fatalf("%s : expected valid=%v, got %v", arg.name, arg.valid, valid)
		}
	}
}

func TestVerifyExpired(t *testing.T) {
	ctx := context.Background()

	now := time.Now()
	service := NewService(NewMemoryStore())
	service.now = func() time.Time {
		return now
	}

	code, _, err := service.Issue(ctx, "donor@thelifesavers.in")
	if err != nil {
		t.Fatal(err)
	}

	service.now = func() time.Time {
		return now.Add(10*time.Minute + time.Second)
	}

	valid, err := service.Verify(ctx, "donor@thelifesavers.in", code)
	if err != nil {
		t.Fatal(err)
	}
	if valid {
		t.Fatal("an expired code must not verify")
	}
}

func TestVerifyConsumesTheCode(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewMemoryStore())

	code, _, err := service.Issue(ctx, "donor@thelifesavers.in")
	if err != nil {
		t.Fatal(err)
	}

	valid, err := service.Verify(ctx, "donor@thelifesavers.in", code)
	if err != nil {
		t.Fatal(err)
	}
	if !valid {
		t.Fatal("a freshly issued code must verify")
	}

	valid, err = service.Verify(ctx, "donor@thelifesavers.in", code)
	if err != nil {
		t.Fatal(err)
	}
	if valid {
		t.Fatal("a consumed code must not verify a second time")
	}
}

func TestReissueReplacesThePriorCode(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewMemoryStore())

	first, _, err := service.Issue(ctx, "donor@thelifesavers.in")
	if err != nil {
		t.Fatal(err)
	}

	var second string
	// codes are random, draw until the two differ
	for {
		second, _, err = service.Issue(ctx, "donor@thelifesavers.in")
		if err != nil {
			t.Fatal(err)
		}
		if second != first {
			break
		}
	}

	valid, err := service.Verify(ctx, "donor@thelifesavers.in", first)
	if err != nil {
		t.Fatal(err)
	}
	if valid {
		t.Fatal("reissuing must invalidate the prior code immediately")
	}

	valid, err = service.Verify(ctx, "donor@thelifesavers.in", second)
	if err != nil {
		t.Fatal(err)
	}
	if !valid {
		t.Fatal("the latest issued code must verify")
	}
}

func TestFailedVerifyLeavesTheEntry(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewMemoryStore())

	code, _, err := service.Issue(ctx, "donor@thelifesavers.in")
	if err != nil {
		t.Fatal(err)
	}

	valid, err := service.Verify(ctx, "donor@thelifesavers.in", "000000")
	if err != nil {
		t.Fatal(err)
	}
	if valid {
		t.Fatal("a wrong code must not verify")
	}

	valid, err = service.Verify(ctx, "donor@thelifesavers.in", code)
	if err != nil {
		t.Fatal(err)
	}
	if !valid {
		t.Fatal("a failed attempt must leave the stored code in place")
	}
}
