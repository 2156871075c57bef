// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanResolve(t *testing.T) {
	tests := []struct {
		name      string
		span      Span
		n         int
		wantStart int
		wantCount int
		wantErr   bool
	}{
		{"whole", Whole(), 10, 0, 10, false},
		{"whole of empty", Whole(), 0, 0, 0, false},
		{"from middle", From(4), 10, 4, 6, false},
		{"from end", From(10), 10, 10, 0, false},
		{"explicit", Span{Start: 2, Count: 5}, 10, 2, 5, false},
		{"zero count", Span{Start: 3, Count: 0}, 10, 3, 0, false},
		{"negative start", Span{Start: -1, Count: All}, 10, 0, 0, true},
		{"start past end", From(11), 10, 0, 0, true},
		{"count past end", Span{Start: 8, Count: 3}, 10, 0, 0, true},
		{"negative count", Span{Start: 0, Count: -2}, 10, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, count, err := tt.span.Resolve(tt.n)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestSpanZeroValueIsEmpty(t *testing.T) {
	start, count, err := Span{}.Resolve(5)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, count)
}
