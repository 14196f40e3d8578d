// Package otp issues and verifies short lived one time passwords
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Validity is the fixed time to live of every issued code
const Validity = 10 * time.Minute

// ErrNoEntry is returned when no code has been issued for the identity
var ErrNoEntry = fmt.Errorf("no otp entry for the given identity")

// Store holds issued codes keyed by identity; exactly one live entry per
// identity, a new Put unconditionally replaces the previous entry
type Store interface {
	Put(ctx context.Context, identity, code string, expiresAt time.Time) error
	Get(ctx context.Context, identity string) (code string, expiresAt time.Time, err error)
	Delete(ctx context.Context, identity string) error
}

// Service issues and verifies codes against a pluggable store so that the
// email verification and the password reset flows share the same
// generation and expiry logic
type Service struct {
	Store Store

	// now is swapped out in tests
	now func() time.Time
}

// NewService creates an OTP service backed by the given store
func NewService(store Store) *Service {
	return &Service{
		Store: store,
		now:   time.Now,
	}
}

// Generate draws a 6 digit code uniformly from [100000, 999999]
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate the otp: %w", err)
	}

	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// Issue generates a code for the identity and stores it, replacing any
// code issued earlier; there is no cooldown between issue calls
func (s *Service) Issue(ctx context.Context, identity string) (code string, expiresAt time.Time, err error) {
	code, err = Generate()
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt = s.now().Add(Validity)
	err = s.Store.Put(ctx, identity, code, expiresAt)
	if err != nil {
		return "", time.Time{}, err
	}

	return code, expiresAt, nil
}

// Verify checks the code issued for the identity; a successful
// verification consumes the entry, a failed or expired one leaves it in
// place until it is overwritten by a new issue call
func (s *Service) Verify(ctx context.Context, identity, code string) (bool, error) {
	stored, expiresAt, err := s.Store.Get(ctx, identity)
	if err != nil {
		if err == ErrNoEntry {
			return false, nil
		}

		return false, err
	}

	if stored != code || s.now().After(expiresAt) {
		return false, nil
	}

	err = s.Store.Delete(ctx, identity)
	if err != nil {
		return false, err
	}

	return true, nil
}
