package directory

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry-finder-backend/internal/model"
)

func shops(ids ...string) []model.LaundryShop {
	out := make([]model.LaundryShop, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.LaundryShop{ID: id, Name: "Shop " + id})
	}
	return out
}

// sourceFunc adapts a function to the Source interface.
type sourceFunc func(ctx context.Context) ([]model.LaundryShop, error)

func (f sourceFunc) FetchShops(ctx context.Context) ([]model.LaundryShop, error) {
	return f(ctx)
}

func TestDirectory_SelectAndDeselect(t *testing.T) {
	d := New(nil, Options{})
	d.Load(shops("1", "2", "3"))

	require.NoError(t, d.Select("2"))
	assert.Equal(t, "2", d.SelectedID())

	// Re-selecting keeps the selection.
	require.NoError(t, d.Select("2"))
	assert.Equal(t, "2", d.SelectedID())

	selected, ok := d.Selected()
	require.True(t, ok)
	assert.Equal(t, "Shop 2", selected.Name)

	d.Deselect()
	assert.Equal(t, "", d.SelectedID())
	_, ok = d.Selected()
	assert.False(t, ok)

	// Deselect is idempotent.
	d.Deselect()
	assert.Equal(t, "", d.SelectedID())
}

func TestDirectory_SelectUnknownKeepsPriorSelection(t *testing.T) {
	d := New(nil, Options{})
	d.Load(shops("1", "2", "3"))
	require.NoError(t, d.Select("2"))

	err := d.Select("99")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "2", d.SelectedID())
}

func TestDirectory_LoadClearsMissingSelection(t *testing.T) {
	d := New(nil, Options{})
	d.Load(shops("1", "2", "3"))
	require.NoError(t, d.Select("2"))

	d.Load(shops("1", "2"))
	assert.Equal(t, "2", d.SelectedID(), "selection should survive when the shop is still listed")

	d.Load(shops("1", "3"))
	assert.Equal(t, "", d.SelectedID())
}

func TestDirectory_ReturnsCopies(t *testing.T) {
	d := New(nil, Options{})
	input := shops("1")
	input[0].Washers = []model.Machine{{ID: "w1", Status: model.StatusAvailable}}
	d.Load(input)

	input[0].Name = "mutated"
	got := d.Shops()
	assert.Equal(t, "Shop 1", got[0].Name)

	got[0].Washers[0].Status = model.StatusMaintenance
	shop, ok := d.Shop("1")
	require.True(t, ok)
	assert.Equal(t, model.StatusAvailable, shop.Washers[0].Status)

	_, ok = d.Shop("nope")
	assert.False(t, ok)
}

func TestDirectory_OnChangeFiresAfterLoad(t *testing.T) {
	d := New(nil, Options{})
	var calls atomic.Int32
	d.OnChange(func() { calls.Add(1) })

	d.Load(shops("1"))
	d.Load(shops("2"))
	assert.Equal(t, int32(2), calls.Load())
}

func TestDirectory_RefreshWithoutSourceKeepsData(t *testing.T) {
	d := New(nil, Options{RefreshDelay: 10 * time.Millisecond})
	d.Load(shops("1", "2"))
	require.NoError(t, d.Select("1"))

	started, err := d.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, started)
	assert.False(t, d.Loading())
	assert.Len(t, d.Shops(), 2)
	assert.Equal(t, "1", d.SelectedID())
}

func TestDirectory_RefreshLoadsFromSource(t *testing.T) {
	src := sourceFunc(func(ctx context.Context) ([]model.LaundryShop, error) {
		return shops("1", "4"), nil
	})
	d := New(src, Options{})
	d.Load(shops("1", "2"))
	require.NoError(t, d.Select("2"))

	started, err := d.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, started)

	got := d.Shops()
	require.Len(t, got, 2)
	assert.Equal(t, "4", got[1].ID)
	assert.Equal(t, "", d.SelectedID())
}

func TestDirectory_RefreshSourceError(t *testing.T) {
	boom := errors.New("upstream down")
	src := sourceFunc(func(ctx context.Context) ([]model.LaundryShop, error) {
		return nil, boom
	})
	d := New(src, Options{})
	d.Load(shops("1"))

	started, err := d.Refresh(context.Background())
	assert.True(t, started)
	assert.ErrorIs(t, err, boom)
	assert.False(t, d.Loading())
	assert.Len(t, d.Shops(), 1, "a failed refresh must not clear the directory")
}

func TestDirectory_OverlappingRefreshIsCoalesced(t *testing.T) {
	release := make(chan struct{})
	var fetches atomic.Int32
	src := sourceFunc(func(ctx context.Context) ([]model.LaundryShop, error) {
		fetches.Add(1)
		<-release
		return shops("1"), nil
	})
	d := New(src, Options{})

	done := make(chan bool, 1)
	go func() {
		started, err := d.Refresh(context.Background())
		assert.NoError(t, err)
		done <- started
	}()

	require.Eventually(t, d.Loading, time.Second, 5*time.Millisecond)

	started, err := d.Refresh(context.Background())
	require.NoError(t, err)
	assert.False(t, started, "second refresh while loading must be a no-op")

	close(release)
	select {
	case started := <-done:
		assert.True(t, started)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the first refresh")
	}

	assert.Equal(t, int32(1), fetches.Load())
	assert.False(t, d.Loading())
}

func TestDirectory_RefreshCancelledDuringDelay(t *testing.T) {
	d := New(nil, Options{RefreshDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	started, err := d.Refresh(ctx)
	assert.True(t, started)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, d.Loading())
}

func TestDirectory_RunRefreshesOnInterval(t *testing.T) {
	var fetches atomic.Int32
	src := sourceFunc(func(ctx context.Context) ([]model.LaundryShop, error) {
		fetches.Add(1)
		return shops("1"), nil
	})
	d := New(src, Options{Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(stopped)
	}()

	require.Eventually(t, func() bool { return fetches.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-stopped
}

func TestDirectory_RunDisabled(t *testing.T) {
	d := New(nil, Options{})
	// Returns immediately when no interval is configured.
	d.Run(context.Background())
}
