package skeleton

import (
	"testing"

	"go.viam.com/test"
)

func TestLength(t *testing.T) {
	a := NewJoint(HipLeft, 0, 0, 0, Tracked)
	b := NewJoint(KneeLeft, 3, 4, 0, Tracked)
	test.That(t, Length(a, b), test.ShouldEqual, 5.0)
	test.That(t, Length(b, a), test.ShouldEqual, 5.0)
	test.That(t, Length(a, a), test.ShouldEqual, 0.0)

	c := NewJoint(AnkleLeft, 1, 2, 2, Tracked)
	test.That(t, Length(a, c), test.ShouldAlmostEqual, 3.0, 1e-12)
}

func TestChainLength(t *testing.T) {
	chain := []Joint{
		NewJoint(Head, 0, 0, 2, Tracked),
		NewJoint(Neck, 0, -0.2, 2, Tracked),
		NewJoint(SpineShoulder, 0, -0.4, 2, Tracked),
		NewJoint(SpineBase, 0, -0.6, 2, Tracked),
	}
	test.That(t, ChainLength(chain), test.ShouldAlmostEqual, 0.6, 1e-9)

	segments := Segments(chain)
	test.That(t, segments, test.ShouldHaveLength, 3)
	var sum float64
	for i := 0; i < len(chain)-1; i++ {
		test.That(t, segments[i], test.ShouldEqual, Length(chain[i], chain[i+1]))
		sum += Length(chain[i], chain[i+1])
	}
	test.That(t, ChainLength(chain), test.ShouldAlmostEqual, sum, 1e-12)

	test.That(t, ChainLength(chain[:2]), test.ShouldAlmostEqual, 0.2, 1e-9)
	test.That(t, ChainLength(chain[:1]), test.ShouldEqual, 0.0)
	test.That(t, ChainLength(nil), test.ShouldEqual, 0.0)
	test.That(t, Segments(chain[:1]), test.ShouldBeEmpty)
}

func TestCountTracked(t *testing.T) {
	joints := []Joint{
		NewJoint(HipRight, 0, 0, 0, Tracked),
		NewJoint(KneeRight, 0, 0, 0, Inferred),
		NewJoint(AnkleRight, 0, 0, 0, NotTracked),
		NewJoint(FootRight, 0, 0, 0, Tracked),
	}
	test.That(t, CountTracked(joints), test.ShouldEqual, 2)
	test.That(t, CountTracked(joints[1:3]), test.ShouldEqual, 0)
	test.That(t, CountTracked(nil), test.ShouldEqual, 0)
}
