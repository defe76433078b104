package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rtype/pkg/rt"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, rt.Ok[int, error](5)).Result()
	if !out.IsOk() || out.MustGet() != 5 {
		t.Fatalf("expected Ok(5), got %v", out)
	}
}

func TestFromPair(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	n, err := strconv.Atoi("3")
	v, err := FromPair(ctx, n, err).Unpack()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	n, err = strconv.Atoi("x")
	_, err = FromPair(ctx, n, err).Unpack()
	assert.Error(t, err)
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 3).
		Then(func(ctx context.Context, v int) rt.Result[int, error] { return rt.Ok[int, error](v * 2) }).
		Result()

	assert.Equal(t, rt.Ok[int, error](6), out)
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	called := false
	out := Start(ctx, rt.Err[int](boom)).
		Then(func(ctx context.Context, v int) rt.Result[int, error] {
			called = true
			return rt.Ok[int, error](v + 1)
		}).
		Map(func(ctx context.Context, v int) int {
			called = true
			return v
		}).
		Result()

	assert.Equal(t, rt.Err[int](boom), out)
	if called {
		t.Fatalf("steps must not run after a failure")
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := FromValue(ctx, 4).
		ThenTry(func(ctx context.Context, v int) (int, error) { return v * v, nil }).
		Result()
	assert.Equal(t, 16, ok.MustGet())

	failed := FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, v int) (int, error) { return 0, errors.New("try-error") }).
		Result()
	e, isErr := failed.GetErr()
	require.True(t, isErr)
	assert.EqualError(t, e, "try-error")
}

func TestTypeChangingSteps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parsed := TryTo(FromValue(ctx, "21"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	doubled := parsed.Map(func(ctx context.Context, v int) int { return v * 2 })
	label := MapTo(doubled, func(ctx context.Context, v int) string { return "n=" + strconv.Itoa(v) })
	final := Switch(label, func(ctx context.Context, s string) rt.Result[int, error] {
		return rt.Ok[int, error](len(s))
	})

	assert.Equal(t, "n=42", label.Result().MustGet())
	assert.Equal(t, 4, final.Result().MustGet())
}

func TestCancelledContextStopsChain(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	out := FromValue(ctx, 1).
		Map(func(ctx context.Context, v int) int {
			called = true
			return v
		}).
		Result()

	assert.False(t, called)
	e, isErr := out.GetErr()
	require.True(t, isErr)
	assert.ErrorIs(t, e, context.Canceled)
}

func TestCancelMidChain(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	steps := 0
	out := FromValue(ctx, 1).
		Map(func(ctx context.Context, v int) int {
			steps++
			cancel()
			return v + 1
		}).
		Map(func(ctx context.Context, v int) int {
			steps++
			return v + 1
		}).
		Result()

	assert.Equal(t, 1, steps)
	assert.ErrorIs(t, out.ErrOr(nil), context.Canceled)
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, rt.Err[int](errors.New("missing"))).
		Recover(func(ctx context.Context, err error) rt.Result[int, error] { return rt.Ok[int, error](0) }).
		Map(func(ctx context.Context, v int) int { return v + 1 }).
		Result()
	assert.Equal(t, rt.Ok[int, error](1), out)

	kept := FromValue(ctx, 5).
		Recover(func(ctx context.Context, err error) rt.Result[int, error] { return rt.Ok[int, error](0) }).
		Result()
	assert.Equal(t, rt.Ok[int, error](5), kept)
}

func TestRecover_DoesNotRecoverCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := FromValue(ctx, 1).
		Map(func(ctx context.Context, v int) int { return v }).
		Recover(func(ctx context.Context, err error) rt.Result[int, error] { return rt.Ok[int, error](0) }).
		Result()

	assert.True(t, out.IsErr())
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sCalled, fCalled := false, false
	onSuccess := func(ctx context.Context, v int) { sCalled = true }
	onFailure := func(ctx context.Context, err error) { fCalled = true }

	out1 := FromValue(ctx, 11).Ensure(onSuccess).EnsureFailure(onFailure).Result()
	assert.Equal(t, rt.Ok[int, error](11), out1)
	assert.True(t, sCalled)
	assert.False(t, fCalled)

	sCalled, fCalled = false, false
	bad := errors.New("bad")
	out2 := Start(ctx, rt.Err[int](bad)).Ensure(onSuccess).EnsureFailure(onFailure).Result()
	assert.Equal(t, rt.Err[int](bad), out2)
	assert.False(t, sCalled)
	assert.True(t, fCalled)
}

func TestEnsure_NilCallbackPanics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.ErrorIs(t, rt.Catch(func() { FromValue(ctx, 1).Ensure(nil) }), rt.ErrNilFunc)
	assert.ErrorIs(t, rt.Catch(func() { FromValue(ctx, 1).EnsureFailure(nil) }), rt.ErrNilFunc)
	assert.ErrorIs(t, rt.Catch(func() { Start(ctx, rt.Err[int](errors.New("x"))).Ensure(nil) }), rt.ErrNilFunc)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, v int) int { return v + 100 }
	onFailure := func(ctx context.Context, err error) int { return -1 }

	assert.Equal(t, 103, FromValue(ctx, 3).Finally(onSuccess, onFailure))
	assert.Equal(t, -1, Start(ctx, rt.Err[int](errors.New("x"))).Finally(onSuccess, onFailure))

	label := Finally(FromValue(ctx, 2),
		func(ctx context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
		func(ctx context.Context, err error) string { return "err:" + err.Error() })
	assert.Equal(t, "ok:2", label)
}

func TestNilStepPanics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	err := rt.Catch(func() { FromValue(ctx, 1).Then(nil) })
	assert.ErrorIs(t, err, rt.ErrNilFunc)

	err = rt.Catch(func() { Start(ctx, rt.Err[int](errors.New("x"))).Map(nil) })
	assert.ErrorIs(t, err, rt.ErrNilFunc)
}
