// Package display maps body-space joint positions onto the pixels of a 2D drawing surface.
package display

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/facenskin/howtall/skeleton"
	"github.com/facenskin/howtall/utils"
)

// DefaultExtent is the body-space half range mapped onto a full surface dimension when none is
// given.
const DefaultExtent = 1.0

// Scaler maps the x and y of joint positions in [-MaxX, MaxX] and [-MaxY, MaxY] onto a
// Width by Height surface whose origin is the top left corner.
type Scaler struct {
	Width  int
	Height int
	MaxX   float64
	MaxY   float64
}

// NewScaler returns a scaler for the given surface with the default extents.
func NewScaler(width, height int) Scaler {
	return Scaler{Width: width, Height: height, MaxX: DefaultExtent, MaxY: DefaultExtent}
}

// Validate ensures the surface and extents are positive.
func (s Scaler) Validate() error {
	var errs error
	if s.Width <= 0 {
		errs = multierr.Append(errs, errors.Errorf("width must be positive, got %d", s.Width))
	}
	if s.Height <= 0 {
		errs = multierr.Append(errs, errors.Errorf("height must be positive, got %d", s.Height))
	}
	if !(s.MaxX > 0) || math.IsInf(s.MaxX, 0) {
		errs = multierr.Append(errs, errors.Errorf("max_x must be positive and finite, got %v", s.MaxX))
	}
	if !(s.MaxY > 0) || math.IsInf(s.MaxY, 0) {
		errs = multierr.Append(errs, errors.Errorf("max_y must be positive and finite, got %v", s.MaxY))
	}
	return errs
}

// Scale returns a copy of the joint with x and y replaced by surface coordinates. Y is flipped
// because surface y grows downward. Z and the tracking state are kept.
func (s Scaler) Scale(joint skeleton.Joint) skeleton.Joint {
	joint.Position.X = scale(s.Width, s.MaxX, joint.Position.X)
	joint.Position.Y = scale(s.Height, s.MaxY, -joint.Position.Y)
	return joint
}

// Project returns the surface coordinates of the joint.
func (s Scaler) Project(joint skeleton.Joint) r2.Point {
	scaled := s.Scale(joint)
	return r2.Point{X: scaled.Position.X, Y: scaled.Position.Y}
}

// Point returns the pixel holding the joint. Points on the far edges land on the last pixel.
func (s Scaler) Point(joint skeleton.Joint) image.Point {
	p := s.Project(joint)
	return image.Point{
		X: utils.MinInt(int(p.X), utils.MaxInt(s.Width-1, 0)),
		Y: utils.MinInt(int(p.Y), utils.MaxInt(s.Height-1, 0)),
	}
}

// ScaleToExtent scales the joint onto a width by height surface, mapping body-space
// [-maxX, maxX] and [-maxY, maxY] across the full surface.
func ScaleToExtent(joint skeleton.Joint, width, height int, maxX, maxY float64) skeleton.Joint {
	return Scaler{Width: width, Height: height, MaxX: maxX, MaxY: maxY}.Scale(joint)
}

// ScaleTo scales the joint onto a width by height surface using the default extents.
func ScaleTo(joint skeleton.Joint, width, height int) skeleton.Joint {
	return NewScaler(width, height).Scale(joint)
}

// scale maps position from [-maxBody, maxBody] onto [0, maxPixel], clamping anything outside.
func scale(maxPixel int, maxBody, position float64) float64 {
	pixels := float64(maxPixel)
	value := (pixels/maxBody)/2*position + pixels/2
	return utils.Clamp(value, 0, pixels)
}
