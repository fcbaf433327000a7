package skeleton

import (
	"encoding/json"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestJointTypeNames(t *testing.T) {
	all := AllJointTypes()
	test.That(t, all, test.ShouldHaveLength, NumJointTypes)
	test.That(t, SpineBase, test.ShouldEqual, JointType(0))
	test.That(t, FootRight, test.ShouldEqual, JointType(19))
	test.That(t, SpineShoulder, test.ShouldEqual, JointType(20))
	test.That(t, ThumbRight, test.ShouldEqual, JointType(24))

	for _, jt := range all {
		parsed, err := ParseJointType(jt.String())
		test.That(t, err, test.ShouldBeNil)
		test.That(t, parsed, test.ShouldEqual, jt)
	}

	_, err := ParseJointType("tail")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, JointType(99).IsValid(), test.ShouldBeFalse)
	test.That(t, JointType(99).String(), test.ShouldEqual, "joint_type(99)")
	_, err = JointType(-1).MarshalText()
	test.That(t, err, test.ShouldNotBeNil)
}

func TestTrackingStateNames(t *testing.T) {
	for _, s := range []TrackingState{NotTracked, Inferred, Tracked} {
		parsed, err := ParseTrackingState(s.String())
		test.That(t, err, test.ShouldBeNil)
		test.That(t, parsed, test.ShouldEqual, s)
	}
	_, err := ParseTrackingState("maybe")
	test.That(t, err, test.ShouldNotBeNil)
	_, err = TrackingState(7).MarshalText()
	test.That(t, err, test.ShouldNotBeNil)
}

func TestJointJSON(t *testing.T) {
	j := NewJoint(KneeLeft, 0.1, -0.5, 2.25, Inferred)
	data, err := json.Marshal(j)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual,
		`{"type":"knee_left","position":{"x":0.1,"y":-0.5,"z":2.25},"tracking_state":"inferred"}`)

	var decoded Joint
	test.That(t, json.Unmarshal(data, &decoded), test.ShouldBeNil)
	test.That(t, decoded, test.ShouldResemble, j)

	t.Run("missing state is not tracked", func(t *testing.T) {
		var j Joint
		err := json.Unmarshal([]byte(`{"type":"head","position":{"x":1,"y":2,"z":3}}`), &j)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, j.TrackingState, test.ShouldEqual, NotTracked)
		test.That(t, j.Position, test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	})

	t.Run("missing type", func(t *testing.T) {
		var j Joint
		err := json.Unmarshal([]byte(`{"position":{"x":1,"y":2,"z":3}}`), &j)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "missing a type")
	})

	t.Run("unknown names", func(t *testing.T) {
		var j Joint
		err := json.Unmarshal([]byte(`{"type":"wing","position":{}}`), &j)
		test.That(t, err, test.ShouldNotBeNil)
		err = json.Unmarshal([]byte(`{"type":"head","tracking_state":"sort_of"}`), &j)
		test.That(t, err, test.ShouldNotBeNil)
	})
}
