package height

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/facenskin/howtall/logging"
	"github.com/facenskin/howtall/skeleton"
	"github.com/facenskin/howtall/units"
)

// Estimator measures bodies in a fixed measurement system and logs how it did so.
// It holds no per-frame state and is safe for concurrent use.
type Estimator struct {
	system units.MeasurementSystem
	logger logging.Logger
}

// NewEstimator returns an estimator reporting in the given system.
func NewEstimator(system units.MeasurementSystem, logger logging.Logger) *Estimator {
	return &Estimator{system: system, logger: logger}
}

// System returns the measurement system heights are reported in.
func (e *Estimator) System() units.MeasurementSystem {
	return e.system
}

// Height estimates the standing height of the body. See Height.
func (e *Estimator) Height(body *skeleton.Body) (Estimate, error) {
	est, err := Height(body, e.system)
	if err != nil {
		e.logErr(body, err)
		return est, err
	}
	e.logger.Debugw("estimated height",
		"tracking_id", body.TrackingID,
		"height", est.Value,
		"unit", e.system.Unit(),
		"leg", est.Leg.String(),
		"left_tracked", est.LeftTracked,
		"right_tracked", est.RightTracked,
	)
	return est, nil
}

// UpperHeight returns the seated height of the body in meters. See UpperHeight.
func (e *Estimator) UpperHeight(body *skeleton.Body) (float64, error) {
	h, err := UpperHeight(body)
	if err != nil {
		e.logErr(body, err)
		return 0, err
	}
	e.logger.Debugw("estimated upper height", "tracking_id", body.TrackingID, "height_m", h)
	return h, nil
}

// Result is the outcome of measuring one body of a frame.
type Result struct {
	TrackingID uint64
	Estimate   Estimate
	Err        error
}

// Value is the result as a single number. See Value.
func (r Result) Value() float64 {
	return Value(r.Estimate, r.Err)
}

// Results are the measurements of one frame.
type Results []Result

// String prints out a table of the results with columns of tracking id, value, leg and the
// tracked joint count of each leg.
func (rs Results) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Body", "Height", "Unit", "Leg", "Left Tracked", "Right Tracked", "Error"})
	for _, r := range rs {
		if r.Err != nil {
			t.AppendRow(table.Row{r.TrackingID, fmt.Sprintf("%g", r.Value()), "", "", "", "", r.Err.Error()})
			continue
		}
		t.AppendRow(table.Row{
			r.TrackingID,
			fmt.Sprintf("%.3f", r.Estimate.Value),
			r.Estimate.System.Unit(),
			r.Estimate.Leg.String(),
			r.Estimate.LeftTracked,
			r.Estimate.RightTracked,
			"",
		})
	}
	return t.Render()
}

// Frame measures every body of the frame, in order.
func (e *Estimator) Frame(frame *skeleton.Frame) Results {
	results := make(Results, 0, len(frame.Bodies))
	for _, body := range frame.Bodies {
		var r Result
		if body != nil {
			r.TrackingID = body.TrackingID
		}
		r.Estimate, r.Err = e.Height(body)
		results = append(results, r)
	}
	return results
}

func (e *Estimator) logErr(body *skeleton.Body, err error) {
	if body == nil {
		e.logger.Debug("no body to measure")
		return
	}
	if missing := skeleton.MissingJoints(err); len(missing) > 0 {
		e.logger.Warnw("body is missing joints", "tracking_id", body.TrackingID, "missing", missing)
		return
	}
	e.logger.Debugw("cannot measure body", "tracking_id", body.TrackingID, "error", err)
}
