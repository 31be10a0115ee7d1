package tensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 5, Shape{5}.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements())
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.NoError(t, Shape{}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1, 3}.Validate())
}

func TestShape_ComputeStrides(t *testing.T) {
	if diff := cmp.Diff([]int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides()); diff != "" {
		t.Errorf("strides mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, Shape{7}.ComputeStrides()); diff != "" {
		t.Errorf("strides mismatch (-want +got):\n%s", diff)
	}
}

func TestShape_NormalizeDim(t *testing.T) {
	s := Shape{2, 3, 4}

	assert.Equal(t, 0, s.NormalizeDim(0))
	assert.Equal(t, 2, s.NormalizeDim(2))
	assert.Equal(t, 2, s.NormalizeDim(-1))
	assert.Equal(t, 0, s.NormalizeDim(-3))
	assert.Panics(t, func() { s.NormalizeDim(3) })
	assert.Panics(t, func() { s.NormalizeDim(-4) })
}

func TestShape_CloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 99

	assert.Equal(t, Shape{2, 3}, s)
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name        string
		a, b        Shape
		want        Shape
		broadcast   bool
		expectError bool
	}{
		{name: "same shapes", a: Shape{2, 3}, b: Shape{2, 3}, want: Shape{2, 3}, broadcast: false},
		{name: "row against matrix", a: Shape{2, 3}, b: Shape{3}, want: Shape{2, 3}, broadcast: true},
		{name: "column against matrix", a: Shape{2, 3}, b: Shape{2, 1}, want: Shape{2, 3}, broadcast: true},
		{name: "both expand", a: Shape{2, 1, 3}, b: Shape{1, 4, 1}, want: Shape{2, 4, 3}, broadcast: true},
		{name: "scalar shape", a: Shape{1}, b: Shape{5, 5}, want: Shape{5, 5}, broadcast: true},
		{name: "incompatible", a: Shape{2, 3}, b: Shape{4}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, broadcast, err := BroadcastShapes(tt.a, tt.b)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.broadcast, broadcast)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("shape mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
