package runtime

import (
	"context"
	"errors"
	"testing"
)

func TestAsyncSequenceNextPullsValues(t *testing.T) {
	values := []int{1, 2, 3}
	i := 0
	seq := NewAsyncSequence[int](context.Background(), func(ctx context.Context) (int, bool, error) {
		if i >= len(values) {
			return 0, false, nil
		}
		v := values[i]
		i++
		return v, true, nil
	})

	for _, want := range values {
		v, ok, err := seq.Next()
		if err != nil || !ok || v != want {
			t.Fatalf("Next() = %d, %v, %v, want %d, true, nil", v, ok, err, want)
		}
	}
	v, ok, err := seq.Next()
	if err != nil || ok || v != 0 {
		t.Errorf("Next() after exhaustion = %d, %v, %v, want 0, false, nil", v, ok, err)
	}
}

func TestAsyncSequencePropagatesProducerError(t *testing.T) {
	wantErr := errors.New("producer failed")
	seq := NewAsyncSequence[int](context.Background(), func(ctx context.Context) (int, bool, error) {
		return 0, false, wantErr
	})
	_, _, err := seq.Next()
	if !errors.Is(err, wantErr) {
		t.Errorf("Next() error = %v, want %v", err, wantErr)
	}
}

func TestAsyncSequenceRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	seq := NewAsyncSequence[int](ctx, func(ctx context.Context) (int, bool, error) {
		return 0, false, ctx.Err()
	})
	_, _, err := seq.Next()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Next() error = %v, want context.Canceled", err)
	}
}
