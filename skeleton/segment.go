package skeleton

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
)

// Length returns the length of the segment between two joints, in the joints' units.
func Length(p1, p2 Joint) float64 {
	return p1.Position.Distance(p2.Position)
}

// Segments returns the length of every consecutive segment of the chain. A chain of fewer than
// two joints has no segments.
func Segments(joints []Joint) []float64 {
	if len(joints) < 2 {
		return nil
	}
	lengths := make([]float64, len(joints)-1)
	for i := range lengths {
		lengths[i] = Length(joints[i], joints[i+1])
	}
	return lengths
}

// ChainLength returns the summed length of the segments joining the joints in order.
func ChainLength(joints []Joint) float64 {
	return floats.Sum(Segments(joints))
}

// CountTracked returns how many of the joints are Tracked. Inferred joints do not count.
func CountTracked(joints []Joint) int {
	return lo.CountBy(joints, Joint.IsTracked)
}
