package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestClamp(t *testing.T) {
	test.That(t, Clamp(5, 0, 10), test.ShouldEqual, 5.0)
	test.That(t, Clamp(-1, 0, 10), test.ShouldEqual, 0.0)
	test.That(t, Clamp(11, 0, 10), test.ShouldEqual, 10.0)
	test.That(t, Clamp(math.Inf(1), 0, 10), test.ShouldEqual, 10.0)
	test.That(t, Clamp(math.Inf(-1), 0, 10), test.ShouldEqual, 0.0)
	test.That(t, Clamp(math.NaN(), 0, 10), test.ShouldEqual, 0.0)
}

func TestMinMaxInt(t *testing.T) {
	test.That(t, MaxInt(2, 3), test.ShouldEqual, 3)
	test.That(t, MaxInt(-2, -3), test.ShouldEqual, -2)
	test.That(t, MinInt(2, 3), test.ShouldEqual, 2)
	test.That(t, MinInt(-2, -3), test.ShouldEqual, -3)
}
