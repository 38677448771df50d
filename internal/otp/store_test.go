package otp

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestStore(start time.Time) (*Store, *time.Time) {
	now := start
	s := NewStore(Expiration, func() time.Time { return now })
	return s, &now
}

func TestGenerateRange(t *testing.T) {
	s, _ := newTestStore(time.Unix(0, 0))
	for i := 0; i < 1000; i++ {
		code := s.Generate()
		assert.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.Less(t, n, 109000)
	}
}

func TestVerifyConsumesCode(t *testing.T) {
	s, _ := newTestStore(time.Unix(0, 0))
	s.Set("a@b.com", "100001")

	assert.True(t, s.Verify("a@b.com", "100001"))
	assert.False(t, s.Verify("a@b.com", "100001"))
}

func TestVerifyWrongCodeLeavesEntry(t *testing.T) {
	s, _ := newTestStore(time.Unix(0, 0))
	s.Set("a@b.com", "100001")

	assert.False(t, s.Verify("a@b.com", "999999"))
	assert.True(t, s.Verify("a@b.com", "100001"))
}

func TestVerifyUnknownID(t *testing.T) {
	s, _ := newTestStore(time.Unix(0, 0))
	assert.False(t, s.Verify("nobody@b.com", "100001"))
}

func TestSetOverwritesPendingCode(t *testing.T) {
	s, _ := newTestStore(time.Unix(0, 0))
	s.Set("a@b.com", "100001")
	s.Set("a@b.com", "100002")

	assert.False(t, s.Verify("a@b.com", "100001"))
	assert.True(t, s.Verify("a@b.com", "100002"))
}

func TestVerifyExpiredCode(t *testing.T) {
	s, now := newTestStore(time.Unix(0, 0))
	s.Set("a@b.com", "100001")

	*now = now.Add(Expiration + time.Second)
	assert.False(t, s.Verify("a@b.com", "100001"))
}

func TestCleanupRemovesExpiredOnly(t *testing.T) {
	s, now := newTestStore(time.Unix(0, 0))
	s.Set("old@b.com", "100001")

	*now = now.Add(Expiration + time.Second)
	s.Set("fresh@b.com", "100002")
	s.Cleanup()

	assert.False(t, s.Verify("old@b.com", "100001"))
	assert.True(t, s.Verify("fresh@b.com", "100002"))
}
