package contractor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  float64
		wantErr bool
	}{
		{name: "valid", lo: -1, hi: 2},
		{name: "degenerate", lo: 3, hi: 3},
		{name: "unbounded", lo: math.Inf(-1), hi: math.Inf(1)},
		{name: "inverted", lo: 2, hi: -1, wantErr: true},
		{name: "nan_lo", lo: math.NaN(), hi: 0, wantErr: true},
		{name: "nan_hi", lo: 0, hi: math.NaN(), wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			iv, err := NewInterval(test.lo, test.hi)
			if test.wantErr {
				require.Error(t, err)
				assert.True(t, iv.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.lo, iv.Lo)
			assert.Equal(t, test.hi, iv.Hi)
		})
	}
}

func TestIntervalPredicates(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.False(t, Point(0).IsEmpty())
	assert.True(t, Entire().IsEntire())
	assert.False(t, Interval{Lo: 0, Hi: math.Inf(1)}.IsEntire())

	iv := Interval{Lo: -1, Hi: 2}
	assert.True(t, iv.Contains(0))
	assert.True(t, iv.Contains(-1))
	assert.True(t, iv.Contains(2))
	assert.False(t, iv.Contains(2.5))
	assert.False(t, Empty().Contains(0))

	assert.Equal(t, 3.0, iv.Width())
	assert.Equal(t, 0.0, Empty().Width())
	assert.Equal(t, 0.5, iv.Mid())
}

func TestIntervalIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want Interval
	}{
		{name: "overlap", a: Interval{Lo: 0, Hi: 5}, b: Interval{Lo: 3, Hi: 8}, want: Interval{Lo: 3, Hi: 5}},
		{name: "nested", a: Interval{Lo: 0, Hi: 10}, b: Interval{Lo: 2, Hi: 3}, want: Interval{Lo: 2, Hi: 3}},
		{name: "touching", a: Interval{Lo: 0, Hi: 2}, b: Interval{Lo: 2, Hi: 4}, want: Point(2)},
		{name: "disjoint", a: Interval{Lo: 0, Hi: 1}, b: Interval{Lo: 2, Hi: 3}, want: Empty()},
		{name: "with_empty", a: Interval{Lo: 0, Hi: 1}, b: Empty(), want: Empty()},
		{name: "with_entire", a: Interval{Lo: 0, Hi: 1}, b: Entire(), want: Interval{Lo: 0, Hi: 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, test.a.Intersect(test.b).Equal(test.want))
			assert.True(t, test.b.Intersect(test.a).Equal(test.want))
		})
	}
}

func TestIntervalHull(t *testing.T) {
	a := Interval{Lo: 0, Hi: 1}
	b := Interval{Lo: 3, Hi: 4}
	assert.True(t, a.Hull(b).Equal(Interval{Lo: 0, Hi: 4}))
	assert.True(t, a.Hull(Empty()).Equal(a))
	assert.True(t, Empty().Hull(b).Equal(b))
}

func TestIntervalAddSub(t *testing.T) {
	a := Interval{Lo: 1, Hi: 2}
	b := Interval{Lo: 10, Hi: 20}
	assert.True(t, a.Add(b).Equal(Interval{Lo: 11, Hi: 22}))
	assert.True(t, b.Sub(a).Equal(Interval{Lo: 8, Hi: 19}))
	assert.True(t, a.Add(Empty()).IsEmpty())
	assert.True(t, Empty().Sub(a).IsEmpty())
	assert.True(t, a.Neg().Equal(Interval{Lo: -2, Hi: -1}))
}

func TestIntervalMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want Interval
	}{
		{name: "positive", a: Interval{Lo: 2, Hi: 3}, b: Interval{Lo: 4, Hi: 5}, want: Interval{Lo: 8, Hi: 15}},
		{name: "mixed_sign", a: Interval{Lo: -2, Hi: 3}, b: Interval{Lo: -1, Hi: 4}, want: Interval{Lo: -8, Hi: 12}},
		{name: "negative", a: Interval{Lo: -3, Hi: -2}, b: Interval{Lo: -5, Hi: -4}, want: Interval{Lo: 8, Hi: 15}},
		{name: "zero_times_unbounded", a: Point(0), b: Entire(), want: Point(0)},
		{name: "empty", a: Empty(), b: Interval{Lo: 1, Hi: 2}, want: Empty()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, test.a.Mul(test.b).Equal(test.want))
		})
	}
}

func TestIntervalDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want Interval
	}{
		{name: "positive", a: Interval{Lo: 6, Hi: 12}, b: Interval{Lo: 2, Hi: 3}, want: Interval{Lo: 2, Hi: 6}},
		{name: "negative_divisor", a: Interval{Lo: 6, Hi: 12}, b: Interval{Lo: -3, Hi: -2}, want: Interval{Lo: -6, Hi: -2}},
		{name: "straddling_divisor", a: Interval{Lo: 1, Hi: 2}, b: Interval{Lo: -1, Hi: 1}, want: Entire()},
		{name: "zero_divisor_nonzero_dividend", a: Interval{Lo: 1, Hi: 2}, b: Point(0), want: Empty()},
		{name: "zero_divisor_zero_dividend", a: Interval{Lo: -1, Hi: 1}, b: Point(0), want: Entire()},
		{name: "zero_dividend", a: Point(0), b: Interval{Lo: 1, Hi: 2}, want: Point(0)},
		{name: "zero_dividend_straddling_divisor", a: Point(0), b: Interval{Lo: -1, Hi: 1}, want: Entire()},
		{name: "zero_dividend_zero_divisor", a: Point(0), b: Point(0), want: Entire()},
		{
			name: "half_open_divisor_positive",
			a:    Interval{Lo: 1, Hi: 2},
			b:    Interval{Lo: 0, Hi: 4},
			want: Interval{Lo: 0.25, Hi: math.Inf(1)},
		},
		{
			name: "half_open_divisor_negative_dividend",
			a:    Interval{Lo: -2, Hi: -1},
			b:    Interval{Lo: 0, Hi: 4},
			want: Interval{Lo: math.Inf(-1), Hi: -0.25},
		},
		{
			name: "divisor_touching_zero_from_below",
			a:    Interval{Lo: 1, Hi: 2},
			b:    Interval{Lo: -4, Hi: 0},
			want: Interval{Lo: math.Inf(-1), Hi: -0.25},
		},
		{name: "empty", a: Empty(), b: Interval{Lo: 1, Hi: 2}, want: Empty()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, test.a.Div(test.b).Equal(test.want),
				"got %s, want %s", test.a.Div(test.b), test.want)
		})
	}
}

func TestIntervalPow(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		n    int
		want Interval
	}{
		{name: "square_straddling", iv: Interval{Lo: -2, Hi: 1}, n: 2, want: Interval{Lo: 0, Hi: 4}},
		{name: "square_positive", iv: Interval{Lo: 2, Hi: 3}, n: 2, want: Interval{Lo: 4, Hi: 9}},
		{name: "square_negative", iv: Interval{Lo: -3, Hi: -2}, n: 2, want: Interval{Lo: 4, Hi: 9}},
		{name: "cube", iv: Interval{Lo: -2, Hi: 3}, n: 3, want: Interval{Lo: -8, Hi: 27}},
		{name: "zeroth", iv: Interval{Lo: -2, Hi: 3}, n: 0, want: Point(1)},
		{name: "first", iv: Interval{Lo: -2, Hi: 3}, n: 1, want: Interval{Lo: -2, Hi: 3}},
		{name: "reciprocal", iv: Interval{Lo: 2, Hi: 4}, n: -1, want: Interval{Lo: 0.25, Hi: 0.5}},
		{name: "empty", iv: Empty(), n: 2, want: Empty()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, test.iv.Pow(test.n).Equal(test.want),
				"got %s, want %s", test.iv.Pow(test.n), test.want)
		})
	}
}

func TestIntervalRoot(t *testing.T) {
	assert.True(t, Interval{Lo: 0, Hi: 4}.Root(2).Equal(Interval{Lo: 0, Hi: 2}))
	assert.True(t, Interval{Lo: -4, Hi: 9}.Root(2).Equal(Interval{Lo: 0, Hi: 3}))
	assert.True(t, Interval{Lo: -4, Hi: -1}.Root(2).IsEmpty())
	assertIntervalInDelta(t, Interval{Lo: 2, Hi: 3}, Interval{Lo: 8, Hi: 27}.Root(3), 1e-12)
}

func TestIntervalEqualAndString(t *testing.T) {
	assert.True(t, Empty().Equal(Interval{Lo: 5, Hi: 1}))
	assert.False(t, Empty().Equal(Point(0)))
	assert.Equal(t, "∅", Empty().String())
	assert.Equal(t, "[-1, 2]", Interval{Lo: -1, Hi: 2}.String())
	assert.Equal(t, "[-Inf, +Inf]", Entire().String())
}
