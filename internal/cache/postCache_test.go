package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"naukrivacancy/internal/models"
)

func testPost(name, description, state string) models.JobPost {
	return models.JobPost{
		ID:          primitive.NewObjectID(),
		PostName:    name,
		Description: description,
		State:       state,
	}
}

func newTestCache(start time.Time) (*Cache, *time.Time) {
	now := start
	c := New(TTL, func() time.Time { return now })
	return c, &now
}

func TestLookupMissesWhenEmpty(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))

	_, ok := c.Lookup(All, "", 0, 18)
	assert.False(t, ok)
}

func TestStoreThenLookupPaginates(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))

	posts := []models.JobPost{
		testPost("SSC CGL 2025", "", ""),
		testPost("RRB NTPC 2025", "", ""),
		testPost("UPSC CSE 2025", "", ""),
	}
	c.Store(All, posts)

	page, ok := c.Lookup(All, "", 0, 2)
	assert.True(t, ok)
	assert.Len(t, page.Posts, 2)
	assert.Equal(t, "SSC CGL 2025", page.Posts[0].PostName)
	assert.Equal(t, "RRB NTPC 2025", page.Posts[1].PostName)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.PageCount)

	page, ok = c.Lookup(All, "", 2, 2)
	assert.True(t, ok)
	assert.Len(t, page.Posts, 1)
	assert.Equal(t, "UPSC CSE 2025", page.Posts[0].PostName)
}

func TestLookupSkipBeyondEnd(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))
	c.Store(All, []models.JobPost{testPost("SSC CGL 2025", "", "")})

	page, ok := c.Lookup(All, "", 100, 18)
	assert.True(t, ok)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.Total)
}

func TestLookupExpiresAfterTTL(t *testing.T) {
	c, now := newTestCache(time.Unix(1000, 0))
	c.Store(All, []models.JobPost{testPost("SSC CGL 2025", "", "")})

	*now = now.Add(TTL - time.Second)
	_, ok := c.Lookup(All, "", 0, 18)
	assert.True(t, ok)

	*now = now.Add(2 * time.Second)
	_, ok = c.Lookup(All, "", 0, 18)
	assert.False(t, ok)
}

func TestStoreRefreshesSharedTimestamp(t *testing.T) {
	c, now := newTestCache(time.Unix(1000, 0))
	c.Store(All, []models.JobPost{testPost("SSC CGL 2025", "", "")})

	*now = now.Add(TTL / 2)
	c.Store(AdmitCard, []models.JobPost{testPost("RRB NTPC 2025", "", "")})

	// The admit card write pushed the shared stamp forward, so the
	// original snapshot outlives its own write by half a TTL.
	*now = now.Add(TTL - time.Second)
	_, ok := c.Lookup(All, "", 0, 18)
	assert.True(t, ok)
}

func TestClearDropsEverything(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))
	c.Store(All, []models.JobPost{testPost("SSC CGL 2025", "", "")})
	c.StoreState("Bihar", []models.JobPost{testPost("BPSC 2025", "", "Bihar")})

	c.Clear()

	_, ok := c.Lookup(All, "", 0, 18)
	assert.False(t, ok)
	_, ok = c.LookupState("Bihar", "", 0, 18)
	assert.False(t, ok)
}

func TestLookupSearchFields(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))
	posts := []models.JobPost{
		testPost("SSC CGL 2025", "Graduate level exam", "Delhi"),
		testPost("RRB NTPC 2025", "Railway recruitment", "Bihar"),
	}
	c.Store(All, posts)
	c.Store(AdmitCard, posts)

	// The default view searches description and state too.
	page, ok := c.Lookup(All, "railway", 0, 18)
	assert.True(t, ok)
	assert.Len(t, page.Posts, 1)
	assert.Equal(t, "RRB NTPC 2025", page.Posts[0].PostName)

	page, ok = c.Lookup(All, "bihar", 0, 18)
	assert.True(t, ok)
	assert.Len(t, page.Posts, 1)

	// Admit card view matches the post name only.
	page, ok = c.Lookup(AdmitCard, "railway", 0, 18)
	assert.True(t, ok)
	assert.Empty(t, page.Posts)

	page, ok = c.Lookup(AdmitCard, "ntpc", 0, 18)
	assert.True(t, ok)
	assert.Len(t, page.Posts, 1)
}

func TestLookupStateDefaultsToAllKey(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))
	c.StoreState("", []models.JobPost{testPost("SSC CGL 2025", "", "Delhi")})

	page, ok := c.LookupState("", "", 0, 18)
	assert.True(t, ok)
	assert.Len(t, page.Posts, 1)

	_, ok = c.LookupState("Bihar", "", 0, 18)
	assert.False(t, ok)
}

func TestLookupStateSearchMatchesPostNameOnly(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))
	c.StoreState("Bihar", []models.JobPost{
		testPost("BPSC 2025", "State civil services", "Bihar"),
		testPost("Bihar Police 2025", "Constable recruitment", "Bihar"),
	})

	page, ok := c.LookupState("Bihar", "police", 0, 18)
	assert.True(t, ok)
	assert.Len(t, page.Posts, 1)
	assert.Equal(t, "Bihar Police 2025", page.Posts[0].PostName)

	page, ok = c.LookupState("Bihar", "civil", 0, 18)
	assert.True(t, ok)
	assert.Empty(t, page.Posts)
}
