package height

import (
	"testing"

	"go.viam.com/test"

	"github.com/facenskin/howtall/logging"
	"github.com/facenskin/howtall/skeleton"
	"github.com/facenskin/howtall/units"
)

func TestEstimatorHeight(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	e := NewEstimator(units.Imperial, logger)
	test.That(t, e.System(), test.ShouldEqual, units.Imperial)

	est, err := e.Height(standingBody(allTracked, threeTracked))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, est.Value, test.ShouldAlmostEqual, 1.6*units.FeetPerMeter, 1e-9)

	entries := logs.FilterMessage("estimated height").All()
	test.That(t, entries, test.ShouldHaveLength, 1)
	fields := entries[0].ContextMap()
	test.That(t, fields["leg"], test.ShouldEqual, "left")
	test.That(t, fields["unit"], test.ShouldEqual, "ft")
	test.That(t, fields["tracking_id"], test.ShouldEqual, uint64(7))
}

func TestEstimatorErrors(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	e := NewEstimator(units.Metric, logger)

	_, err := e.Height(nil)
	test.That(t, err, test.ShouldEqual, ErrNoBody)
	test.That(t, logs.FilterMessage("no body to measure").Len(), test.ShouldEqual, 1)

	body := standingBody(allTracked, allTracked)
	delete(body.Joints, skeleton.Head)
	_, err = e.Height(body)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, logs.FilterMessage("body is missing joints").Len(), test.ShouldEqual, 1)

	_, err = e.UpperHeight(body)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, logs.FilterMessage("body is missing joints").Len(), test.ShouldEqual, 2)
}

func TestEstimatorFrame(t *testing.T) {
	e := NewEstimator(units.Metric, logging.NewTestLogger(t))

	untracked := standingBody(allTracked, allTracked)
	untracked.TrackingID = 9
	untracked.Tracked = false

	results := e.Frame(&skeleton.Frame{Bodies: []*skeleton.Body{
		standingBody(allTracked, threeTracked),
		untracked,
		nil,
	}})
	test.That(t, results, test.ShouldHaveLength, 3)

	test.That(t, results[0].TrackingID, test.ShouldEqual, uint64(7))
	test.That(t, results[0].Err, test.ShouldBeNil)
	test.That(t, results[0].Value(), test.ShouldAlmostEqual, 1.6, 1e-9)

	test.That(t, results[1].TrackingID, test.ShouldEqual, uint64(9))
	test.That(t, results[1].Value(), test.ShouldEqual, SentinelNotTracked)

	test.That(t, results[2].Value(), test.ShouldEqual, SentinelNoBody)

	table := results.String()
	test.That(t, table, test.ShouldContainSubstring, "HEIGHT")
	test.That(t, table, test.ShouldContainSubstring, "1.600")
	test.That(t, table, test.ShouldContainSubstring, "body is not tracked")
	test.That(t, table, test.ShouldContainSubstring, "no body")

	h, err := e.UpperHeight(standingBody(allTracked, allTracked))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, h, test.ShouldAlmostEqual, 0.8, 1e-9)
}
