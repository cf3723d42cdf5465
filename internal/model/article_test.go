package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishedAtParsesUpstreamFormats(t *testing.T) {
	for _, raw := range []string{
		"2024-01-15 08:30:00",
		"2024-01-15T08:30:00Z",
		"Mon, 15 Jan 2024 08:30:00 +0000",
		"2024-01-15",
	} {
		got, ok := Article{PubDate: raw}.PublishedAt()
		require.True(t, ok, "expected %q to parse", raw)
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 15, got.Day())
	}
}

func TestPublishedAtMalformed(t *testing.T) {
	for _, raw := range []string{"", "not a date", "soon"} {
		_, ok := Article{PubDate: raw}.PublishedAt()
		assert.False(t, ok, "expected %q to fail", raw)
	}
}

func TestAuthorsSentinel(t *testing.T) {
	assert.Equal(t, []string{UnknownAuthor}, Article{}.Authors())
	assert.Equal(t, []string{"Al"}, Article{Creators: []string{"Al"}}.Authors())
}

func TestAmountUnsetIsZero(t *testing.T) {
	assert.Zero(t, PayoutEntry{}.Amount())
	v := 3.5
	assert.Equal(t, 3.5, PayoutEntry{Payout: &v}.Amount())
}
