// Package height estimates a person's standing height from the skeleton a body tracker reports.
//
// The estimate is the length of the torso chain (head, neck, upper spine, spine base) plus the
// length of whichever leg has more directly tracked joints, plus a fixed allowance for the top
// of the head, which the head joint does not reach.
package height

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/facenskin/howtall/skeleton"
	"github.com/facenskin/howtall/units"
)

// HeadDivergence is the distance in meters between the tracked head joint and the top of the head.
const HeadDivergence = 0.1

// Values reported by Value in place of a height.
const (
	SentinelNoBody     = -1.0
	SentinelNotTracked = -2.0
)

var (
	// ErrNoBody is returned when no body is given.
	ErrNoBody = errors.New("no body")
	// ErrNotTracked is returned when the body is not currently tracked.
	ErrNotTracked = errors.New("body is not tracked")
)

var (
	torsoChain = []skeleton.JointType{skeleton.Head, skeleton.Neck, skeleton.SpineShoulder, skeleton.SpineBase}
	upperChain = []skeleton.JointType{skeleton.Head, skeleton.SpineMid, skeleton.SpineShoulder, skeleton.SpineBase}
	leftLeg    = []skeleton.JointType{skeleton.HipLeft, skeleton.KneeLeft, skeleton.AnkleLeft, skeleton.FootLeft}
	rightLeg   = []skeleton.JointType{skeleton.HipRight, skeleton.KneeRight, skeleton.AnkleRight, skeleton.FootRight}
)

// Side is the leg used for an estimate.
type Side int

const (
	// Right is used unless the left leg has strictly more tracked joints.
	Right Side = iota
	// Left leg.
	Left
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// SelectLeg picks the leg with strictly more tracked joints, falling back to the right.
func SelectLeg(leftTracked, rightTracked int) Side {
	if leftTracked > rightTracked {
		return Left
	}
	return Right
}

// Estimate is a successful height measurement.
type Estimate struct {
	// Value is the height in System's unit.
	Value  float64
	System units.MeasurementSystem
	Leg    Side
	// TorsoLength and LegLength are in meters whatever the System.
	TorsoLength  float64
	LegLength    float64
	LeftTracked  int
	RightTracked int
}

// Meters returns the height in meters.
func (e Estimate) Meters() float64 {
	return e.TorsoLength + e.LegLength + HeadDivergence
}

func (e Estimate) String() string {
	return fmt.Sprintf("%.3f %s (%s leg)", e.Value, e.System.Unit(), e.Leg)
}

// Height estimates the standing height of the body, reported in the given system.
//
// It returns ErrNoBody for a nil body and ErrNotTracked for a body that is not tracked; both are
// checked before any joint is read. If any of the joints the estimate needs are missing the error
// lists all of them (see skeleton.MissingJoints).
func Height(body *skeleton.Body, system units.MeasurementSystem) (Estimate, error) {
	if body == nil {
		return Estimate{}, ErrNoBody
	}
	if !body.Tracked {
		return Estimate{}, ErrNotTracked
	}

	torso, torsoErr := body.Lookup(torsoChain...)
	left, leftErr := body.Lookup(leftLeg...)
	right, rightErr := body.Lookup(rightLeg...)
	if err := multierr.Combine(torsoErr, leftErr, rightErr); err != nil {
		return Estimate{}, err
	}

	est := Estimate{
		System:       system,
		TorsoLength:  skeleton.ChainLength(torso),
		LeftTracked:  skeleton.CountTracked(left),
		RightTracked: skeleton.CountTracked(right),
	}
	est.Leg = SelectLeg(est.LeftTracked, est.RightTracked)
	if est.Leg == Left {
		est.LegLength = skeleton.ChainLength(left)
	} else {
		est.LegLength = skeleton.ChainLength(right)
	}
	est.Value = system.FromMeters(est.Meters())
	return est, nil
}

// UpperHeight returns the head to spine base length of the body in meters, for subjects who are
// seated. It does not look at tracking state and adds no head allowance.
func UpperHeight(body *skeleton.Body) (float64, error) {
	if body == nil {
		return 0, ErrNoBody
	}
	joints, err := body.Lookup(upperChain...)
	if err != nil {
		return 0, err
	}
	return skeleton.ChainLength(joints), nil
}

// Value flattens the result of Height into a single number for hosts that expect one:
// the height on success, SentinelNoBody or SentinelNotTracked for those errors, and NaN for
// anything else.
func Value(est Estimate, err error) float64 {
	switch {
	case err == nil:
		return est.Value
	case errors.Is(err, ErrNoBody):
		return SentinelNoBody
	case errors.Is(err, ErrNotTracked):
		return SentinelNotTracked
	default:
		return math.NaN()
	}
}
