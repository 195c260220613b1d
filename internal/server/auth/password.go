package auth

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/eduhub/eduhub/internal/common"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// DefaultCost is the bcrypt work factor for stored credentials.
const DefaultCost = 10

// Hasher hashes and verifies passwords with bcrypt. At most one bcrypt
// computation per CPU runs at a time; callers waiting for a slot give up
// when their context ends.
type Hasher struct {
	cost  int
	sem   *semaphore.Weighted
	dummy []byte
}

const dummyPassword = "eduhub-timing-equaliser"

// NewHasher returns a Hasher using DefaultCost.
func NewHasher() *Hasher {
	return newHasher(DefaultCost, runtime.GOMAXPROCS(0))
}

func newHasher(cost int, slots int) *Hasher {
	if slots < 1 {
		slots = 1
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		panic(fmt.Sprintf("auth: dummy digest: %v", err))
	}
	return &Hasher{cost: cost, sem: semaphore.NewWeighted(int64(slots)), dummy: dummy}
}

// Hash returns a salted bcrypt digest of plaintext. Two calls on the same
// input give different digests.
func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is (false, nil);
// an unparseable digest is an error wrapping common.ErrMalformedHash.
func (h *Hasher) Verify(ctx context.Context, plaintext, digest string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrMalformedHash, err)
	}
}

// Burn spends the same work as a real Verify against a throwaway digest.
// Login calls it for unknown emails so response time does not reveal
// whether an account exists.
func (h *Hasher) Burn(ctx context.Context, plaintext string) {
	_, _ = h.Verify(ctx, plaintext, string(h.dummy))
}
