package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/facenskin/howtall/config"
	"github.com/facenskin/howtall/height"
	"github.com/facenskin/howtall/skeleton"
	"github.com/facenskin/howtall/units"
)

func (st *state) heightAction(c *cli.Context) error {
	frame, err := readFrame(c)
	if err != nil {
		return err
	}

	system := st.cfg.System()
	if c.Bool(imperialFlag) {
		system = units.Imperial
	}
	estimator := height.NewEstimator(system, st.logger.Sublogger("height"))

	if c.Bool(upperFlag) {
		for _, body := range frame.Bodies {
			var id uint64
			if body != nil {
				id = body.TrackingID
			}
			h, err := estimator.UpperHeight(body)
			switch {
			case err == nil:
				fmt.Fprintf(c.App.Writer, "body %d: upper %.3f m\n", id, h)
			case errors.Is(err, height.ErrNoBody):
				fmt.Fprintf(c.App.Writer, "body %d: %g (%v)\n", id, height.Value(height.Estimate{}, err), err)
			default:
				fmt.Fprintf(c.App.Writer, "body %d: %v\n", id, err)
			}
		}
		return nil
	}

	results := estimator.Frame(frame)
	if c.Bool(tableFlag) {
		fmt.Fprintln(c.App.Writer, results)
		return nil
	}
	for _, r := range results {
		switch {
		case r.Err == nil:
			fmt.Fprintf(c.App.Writer, "body %d: %s\n", r.TrackingID, r.Estimate)
		case errors.Is(r.Err, height.ErrNoBody), errors.Is(r.Err, height.ErrNotTracked):
			fmt.Fprintf(c.App.Writer, "body %d: %g (%v)\n", r.TrackingID, r.Value(), r.Err)
		default:
			fmt.Fprintf(c.App.Writer, "body %d: %v\n", r.TrackingID, r.Err)
		}
	}
	return nil
}

func (st *state) scaleAction(c *cli.Context) error {
	frame, err := readFrame(c)
	if err != nil {
		return err
	}

	scaler := st.cfg.Scaler()
	if c.IsSet(widthFlag) {
		scaler.Width = c.Int(widthFlag)
	}
	if c.IsSet(heightFlag) {
		scaler.Height = c.Int(heightFlag)
	}
	if c.IsSet(maxXFlag) {
		scaler.MaxX = c.Float64(maxXFlag)
	}
	if c.IsSet(maxYFlag) {
		scaler.MaxY = c.Float64(maxYFlag)
	}
	if err := scaler.Validate(); err != nil {
		return errors.Wrap(err, "invalid display")
	}

	for _, body := range frame.TrackedBodies() {
		for _, jt := range skeleton.AllJointTypes() {
			joint, ok := body.Joints[jt]
			if !ok {
				continue
			}
			p := scaler.Project(joint)
			fmt.Fprintf(c.App.Writer, "body %d %s: %.1f %.1f z=%.3f %s\n",
				body.TrackingID, jt, p.X, p.Y, joint.Position.Z, joint.TrackingState)
		}
	}
	return nil
}

func (st *state) schemaAction(c *cli.Context) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(config.Schema())
}

func readFrame(c *cli.Context) (*skeleton.Frame, error) {
	path := c.Path(frameFlag)
	var r io.Reader
	if path == "-" {
		r = c.App.Reader
		if r == nil {
			r = os.Stdin
		}
	} else {
		//nolint:gosec
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() {
			//nolint:errcheck
			f.Close()
		}()
		r = f
	}
	return skeleton.ReadFrame(r)
}
