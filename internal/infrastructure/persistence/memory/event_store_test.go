package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/values"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func event(id values.InvocationID, op string, page int, offset time.Duration) execution.Event {
	return execution.Event{
		Timestamp:    base.Add(offset),
		InvocationID: id,
		Operation:    op,
		Page:         page,
		Result:       execution.Success(nil),
	}
}

func TestEventStore_FindByInvocation(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore(0)
	walk := values.NewInvocationID()
	other := values.NewInvocationID()

	require.NoError(t, store.Emit(ctx, event(walk, "DescribeTransitGateways", 2, time.Second)))
	require.NoError(t, store.Emit(ctx, event(other, "DescribeAddresses", 0, 0)))
	require.NoError(t, store.Emit(ctx, event(walk, "DescribeTransitGateways", 1, 0)))

	got := store.FindByInvocation(ctx, walk)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Page)
	assert.Equal(t, 2, got[1].Page)

	assert.Empty(t, store.FindByInvocation(ctx, values.NewInvocationID()))
}

func TestEventStore_FindByOperation(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore(0)

	for i := range 3 {
		require.NoError(t, store.Emit(ctx, event(values.NewInvocationID(), "DeleteRoute", 0, time.Duration(i)*time.Second)))
	}
	require.NoError(t, store.Emit(ctx, event(values.NewInvocationID(), "CreateRoute", 0, 0)))

	got := store.FindByOperation(ctx, "DeleteRoute", 2)
	require.Len(t, got, 2)
	assert.Equal(t, base.Add(2*time.Second), got[0].Timestamp)
	assert.Equal(t, base.Add(time.Second), got[1].Timestamp)

	assert.Len(t, store.FindByOperation(ctx, "DeleteRoute", 0), 3)
}

func TestEventStore_FindBetween(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore(0)
	id := values.NewInvocationID()

	for i := range 5 {
		require.NoError(t, store.Emit(ctx, event(id, "DescribeNatGateways", i+1, time.Duration(i)*time.Minute)))
	}

	got := store.FindBetween(ctx, base.Add(time.Minute), base.Add(3*time.Minute))
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Page)
	assert.Equal(t, 4, got[2].Page)
}

func TestEventStore_Capacity(t *testing.T) {
	ctx := context.Background()
	store := NewEventStore(2)
	id := values.NewInvocationID()

	for i := range 4 {
		require.NoError(t, store.Emit(ctx, event(id, "DescribeAddresses", i+1, 0)))
	}

	assert.Equal(t, 2, store.Len())
	got := store.FindByInvocation(ctx, id)
	assert.Equal(t, 3, got[0].Page)
	assert.Equal(t, 4, got[1].Page)
}

type failingSink struct{ calls int }

func (f *failingSink) Emit(context.Context, execution.Event) error {
	f.calls++
	return errors.New("disk full")
}

func TestTee(t *testing.T) {
	ctx := context.Background()
	first := NewEventStore(0)
	second := NewEventStore(0)

	require.NoError(t, Tee{first, second}.Emit(ctx, event(values.NewInvocationID(), "CreateRoute", 0, 0)))
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.Len())

	failing := &failingSink{}
	after := NewEventStore(0)
	err := Tee{failing, after}.Emit(ctx, event(values.NewInvocationID(), "CreateRoute", 0, 0))
	require.Error(t, err)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 0, after.Len())
}
