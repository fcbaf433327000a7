package skeleton

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// Body is one detected person in one frame. Bodies are owned by the caller and are only read here.
type Body struct {
	TrackingID uint64
	Tracked    bool
	Joints     map[JointType]Joint
}

// NewBody returns a body holding the given joints. A later joint replaces an earlier one of the
// same type.
func NewBody(trackingID uint64, tracked bool, joints ...Joint) *Body {
	b := &Body{
		TrackingID: trackingID,
		Tracked:    tracked,
		Joints:     make(map[JointType]Joint, len(joints)),
	}
	for _, j := range joints {
		b.Joints[j.Type] = j
	}
	return b
}

// JointNotFoundError is returned when a body does not carry a requested joint.
type JointNotFoundError struct {
	Type       JointType
	TrackingID uint64
}

// NewJointNotFoundError is used when a joint is absent from a body.
func NewJointNotFoundError(t JointType, trackingID uint64) error {
	return &JointNotFoundError{Type: t, TrackingID: trackingID}
}

func (e *JointNotFoundError) Error() string {
	return fmt.Sprintf("joint %q not found on body %d", e.Type, e.TrackingID)
}

// Joint returns the joint of the given type. It never returns a zero joint in place of a
// missing one.
func (b *Body) Joint(t JointType) (Joint, error) {
	j, ok := b.Joints[t]
	if !ok {
		return Joint{}, NewJointNotFoundError(t, b.TrackingID)
	}
	return j, nil
}

// Lookup returns the joints of the given types in the order asked for. When any are missing the
// returned error names every one of them.
func (b *Body) Lookup(types ...JointType) ([]Joint, error) {
	joints := make([]Joint, 0, len(types))
	var errs error
	for _, t := range types {
		j, err := b.Joint(t)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		joints = append(joints, j)
	}
	if errs != nil {
		return nil, errs
	}
	return joints, nil
}

// MissingJoints lists the joint types named by the JointNotFoundErrors in err.
func MissingJoints(err error) []JointType {
	var missing []JointType
	for _, e := range multierr.Errors(err) {
		var notFound *JointNotFoundError
		if errors.As(e, &notFound) {
			missing = append(missing, notFound.Type)
		}
	}
	return missing
}

type bodyJSON struct {
	TrackingID uint64  `json:"tracking_id"`
	Tracked    bool    `json:"tracked"`
	Joints     []Joint `json:"joints"`
}

// MarshalJSON encodes the body with its joints as a list in tracker order.
func (b *Body) MarshalJSON() ([]byte, error) {
	joints := lo.Values(b.Joints)
	sort.Slice(joints, func(i, k int) bool { return joints[i].Type < joints[k].Type })
	return json.Marshal(bodyJSON{TrackingID: b.TrackingID, Tracked: b.Tracked, Joints: joints})
}

// UnmarshalJSON decodes a body, rejecting repeated joint types.
func (b *Body) UnmarshalJSON(data []byte) error {
	var raw bodyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	joints := make(map[JointType]Joint, len(raw.Joints))
	for _, j := range raw.Joints {
		if _, ok := joints[j.Type]; ok {
			return errors.Errorf("body %d has joint %q more than once", raw.TrackingID, j.Type)
		}
		joints[j.Type] = j
	}
	*b = Body{TrackingID: raw.TrackingID, Tracked: raw.Tracked, Joints: joints}
	return nil
}

// Frame is the set of bodies the tracker reported at one instant.
type Frame struct {
	Timestamp time.Time `json:"timestamp"`
	Bodies    []*Body   `json:"bodies"`
}

// ReadFrame decodes a JSON frame.
func ReadFrame(r io.Reader) (*Frame, error) {
	var f Frame
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decoding frame")
	}
	return &f, nil
}

// TrackedBodies returns the bodies currently marked tracked.
func (f *Frame) TrackedBodies() []*Body {
	return lo.Filter(f.Bodies, func(b *Body, _ int) bool {
		return b != nil && b.Tracked
	})
}
