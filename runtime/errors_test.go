package runtime

import (
	"errors"
	"testing"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrReadonlyMap, ErrReadonlySet, ErrSequenceClosed}
	for i, e1 := range sentinels {
		for j, e2 := range sentinels {
			if i != j && errors.Is(e1, e2) {
				t.Errorf("sentinel %d and %d should be distinct errors", i, j)
			}
		}
	}
}
