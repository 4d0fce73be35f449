package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "America/Sao_Paulo", Location("").String())
	assert.Equal(t, "America/Sao_Paulo", Location("Mars/Olympus").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestWallKeepsShopReading(t *testing.T) {
	instant := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	shop := time.FixedZone("shop", -3*60*60)

	got := Wall(instant, shop)

	assert.Equal(t, time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestNowInIgnoresHostZone(t *testing.T) {
	saved := time.Local
	t.Cleanup(func() { time.Local = saved })
	time.Local = time.FixedZone("host", 9*60*60)

	shop := time.FixedZone("shop", -3*60*60)
	before := time.Now().In(shop)
	got := NowIn(shop)

	require.Equal(t, time.UTC, got.Location())
	assert.WithinDuration(t,
		time.Date(before.Year(), before.Month(), before.Day(), before.Hour(), before.Minute(), before.Second(), 0, time.UTC),
		got, 2*time.Second)
}
