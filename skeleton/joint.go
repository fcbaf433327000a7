// Package skeleton defines the joints and bodies a depth-sensing body tracker reports each frame,
// along with the segment-length primitives computed over them.
package skeleton

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// JointType names an anatomical landmark. Values follow the tracker's own joint numbering.
type JointType int

// The joints reported for every body.
const (
	SpineBase JointType = iota
	SpineMid
	Neck
	Head
	ShoulderLeft
	ElbowLeft
	WristLeft
	HandLeft
	ShoulderRight
	ElbowRight
	WristRight
	HandRight
	HipLeft
	KneeLeft
	AnkleLeft
	FootLeft
	HipRight
	KneeRight
	AnkleRight
	FootRight
	SpineShoulder
	HandTipLeft
	ThumbLeft
	HandTipRight
	ThumbRight

	// NumJointTypes is the number of joint types.
	NumJointTypes = int(ThumbRight) + 1
)

var jointTypeNames = [NumJointTypes]string{
	"spine_base",
	"spine_mid",
	"neck",
	"head",
	"shoulder_left",
	"elbow_left",
	"wrist_left",
	"hand_left",
	"shoulder_right",
	"elbow_right",
	"wrist_right",
	"hand_right",
	"hip_left",
	"knee_left",
	"ankle_left",
	"foot_left",
	"hip_right",
	"knee_right",
	"ankle_right",
	"foot_right",
	"spine_shoulder",
	"hand_tip_left",
	"thumb_left",
	"hand_tip_right",
	"thumb_right",
}

// AllJointTypes returns every joint type in tracker order.
func AllJointTypes() []JointType {
	all := make([]JointType, NumJointTypes)
	for i := range all {
		all[i] = JointType(i)
	}
	return all
}

// IsValid reports whether t is one of the known joint types.
func (t JointType) IsValid() bool {
	return t >= 0 && int(t) < NumJointTypes
}

func (t JointType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("joint_type(%d)", int(t))
	}
	return jointTypeNames[t]
}

// ParseJointType returns the joint type with the given name.
func ParseJointType(name string) (JointType, error) {
	for i, n := range jointTypeNames {
		if n == name {
			return JointType(i), nil
		}
	}
	return 0, errors.Errorf("unknown joint type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t JointType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, errors.Errorf("invalid joint type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *JointType) UnmarshalText(text []byte) error {
	parsed, err := ParseJointType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TrackingState is the tracker's confidence in a joint position.
type TrackingState int

const (
	// NotTracked means the joint was not seen; its position may be stale or zero.
	NotTracked TrackingState = iota
	// Inferred means the position was estimated from neighbouring joints.
	Inferred
	// Tracked means the joint was observed directly.
	Tracked
)

func (s TrackingState) String() string {
	switch s {
	case NotTracked:
		return "not_tracked"
	case Inferred:
		return "inferred"
	case Tracked:
		return "tracked"
	default:
		return fmt.Sprintf("tracking_state(%d)", int(s))
	}
}

// ParseTrackingState returns the tracking state with the given name.
func ParseTrackingState(name string) (TrackingState, error) {
	for _, s := range []TrackingState{NotTracked, Inferred, Tracked} {
		if s.String() == name {
			return s, nil
		}
	}
	return NotTracked, errors.Errorf("unknown tracking state %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s TrackingState) MarshalText() ([]byte, error) {
	if s < NotTracked || s > Tracked {
		return nil, errors.Errorf("invalid tracking state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TrackingState) UnmarshalText(text []byte) error {
	parsed, err := ParseTrackingState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Joint is a single landmark of a body: its position in camera space, in meters, and how
// confidently the tracker located it.
type Joint struct {
	Type          JointType
	Position      r3.Vector
	TrackingState TrackingState
}

// NewJoint returns a joint of the given type at (x, y, z).
func NewJoint(t JointType, x, y, z float64, state TrackingState) Joint {
	return Joint{Type: t, Position: r3.Vector{X: x, Y: y, Z: z}, TrackingState: state}
}

// IsTracked reports whether the joint was observed directly.
func (j Joint) IsTracked() bool {
	return j.TrackingState == Tracked
}

type position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type jointJSON struct {
	Type          JointType     `json:"type"`
	Position      position      `json:"position"`
	TrackingState TrackingState `json:"tracking_state"`
}

// MarshalJSON encodes the joint with lower-case position keys and named enums.
func (j Joint) MarshalJSON() ([]byte, error) {
	return json.Marshal(jointJSON{
		Type:          j.Type,
		Position:      position{j.Position.X, j.Position.Y, j.Position.Z},
		TrackingState: j.TrackingState,
	})
}

// UnmarshalJSON decodes a joint written by MarshalJSON. The type is required; a missing
// tracking state decodes as NotTracked.
func (j *Joint) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type          *JointType    `json:"type"`
		Position      position      `json:"position"`
		TrackingState TrackingState `json:"tracking_state"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type == nil {
		return errors.New("joint is missing a type")
	}
	*j = Joint{
		Type:          *raw.Type,
		Position:      r3.Vector{X: raw.Position.X, Y: raw.Position.Y, Z: raw.Position.Z},
		TrackingState: raw.TrackingState,
	}
	return nil
}
