package logging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func fieldsOf(ctx context.Context) logCtx {
	c, _ := ctx.Value(key).(logCtx)
	return c
}

func TestWrapErrorPreservesContext(t *testing.T) {
	ctx := context.Background()
	ctx = WithLogRunID(ctx, "run")
	ctx = WithLogAttempts(ctx, 42)

	sentinel := errors.New("boom")
	err := WrapError(ctx, sentinel)
	require.EqualError(t, err, "boom")
	require.ErrorIs(t, err, sentinel)

	got := fieldsOf(ErrorCtx(context.Background(), err))
	require.Equal(t, "run", got.RunID)
	require.Equal(t, 42, got.Attempts)
}

func TestWrapErrorNil(t *testing.T) {
	require.NoError(t, WrapError(WithLogRunID(context.Background(), "run"), nil))
}

func TestWrapErrorKeepsInnerFields(t *testing.T) {
	inner := WrapError(WithLogParticipant(context.Background(), "p1", "p1@example.com"), errors.New("send"))
	outer := WrapError(WithLogRunID(context.Background(), "run"), fmt.Errorf("notify: %w", inner))

	got := fieldsOf(ErrorCtx(context.Background(), outer))
	require.Equal(t, "run", got.RunID)
	require.Equal(t, "p1", got.ParticipantID)
	require.Equal(t, "p1@example.com", got.ParticipantEmail)
}

func TestErrorCtxMergesIntoCallerContext(t *testing.T) {
	ctx := WithLogRunMode(WithLogRunID(context.Background(), "run"), true, false)
	err := WrapError(WithLogAttempts(context.Background(), 7), errors.New("draw"))

	got := fieldsOf(ErrorCtx(ctx, err))
	require.Equal(t, "run", got.RunID)
	require.True(t, got.DryRun)
	require.Equal(t, 7, got.Attempts)
}

func TestErrorCtxKeepsContextForPlainErrors(t *testing.T) {
	ctx := WithLogRunID(context.Background(), "run")
	got := ErrorCtx(ctx, errors.New("plain"))
	require.Equal(t, ctx, got)
}
