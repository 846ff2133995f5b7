package polyplay

import (
	"math"

	"github.com/gogpu/gg"
	"go.opentelemetry.io/otel/metric"
)

// ZoomModel selects how wheel events change the zoom factor.
type ZoomModel int

const (
	// ZoomLinear steps the factor by a fixed amount per wheel event,
	// the same way ZoomIn and ZoomOut do.
	ZoomLinear ZoomModel = iota
	// ZoomExponential scales the factor by base^deltaY per wheel event.
	ZoomExponential
)

// String returns the model name.
func (m ZoomModel) String() string {
	switch m {
	case ZoomLinear:
		return "linear"
	case ZoomExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// Anchor selects the focal point of wheel zoom.
type Anchor int

const (
	// AnchorDefault picks the model's default: centre for linear,
	// pointer for exponential.
	AnchorDefault Anchor = iota
	// AnchorCenter zooms around the viewport centre.
	AnchorCenter
	// AnchorPointer zooms around the pointer position of the wheel event.
	AnchorPointer
)

// Zoom defaults.
const (
	DefaultZoomStep      = 0.005
	DefaultZoomPrecision = 3
	DefaultWheelBase     = 0.999

	DefaultLinearZoomMin      = 0.5
	DefaultLinearZoomMax      = 5.0
	DefaultExponentialZoomMin = 0.01
	DefaultExponentialZoomMax = 20.0
)

// Shape defaults.
const (
	DefaultMarkerRadius = 5.0
	DefaultSegmentWidth = 2.0
)

// Palette holds the colors of current (active) and superseded (inactive)
// shapes.
type Palette struct {
	ActiveMarker    gg.RGBA
	InactiveMarker  gg.RGBA
	ActiveSegment   gg.RGBA
	InactiveSegment gg.RGBA

	// InactiveSegmentOpacity applies to superseded segments. Zero means opaque.
	InactiveSegmentOpacity float64
}

// DefaultPalette returns the blue/grey palette of the playground.
func DefaultPalette() Palette {
	return Palette{
		ActiveMarker:    gg.Hex("#1d4ed8"),
		InactiveMarker:  gg.Hex("#60a5fa"),
		ActiveSegment:   gg.Hex("#60a5fa"),
		InactiveSegment: gg.Hex("#9ca3af"),
	}
}

// Option configures a Session during creation.
//
// Example:
//
//	s := polyplay.NewSession(
//	    polyplay.WithMarkerRadius(6),
//	    polyplay.WithExponentialZoom(0.999),
//	)
type Option func(*options)

// options holds session configuration.
type options struct {
	markerRadius  float64
	segmentWidth  float64
	segmentDash   []float64
	palette       Palette
	zoomModel     ZoomModel
	zoomMin       float64
	zoomMax       float64
	zoomStep      float64
	zoomPrecision int
	wheelBase     float64
	wheelAnchor   Anchor
	meterProvider metric.MeterProvider
}

// defaultOptions returns the default session options.
func defaultOptions() options {
	return options{
		markerRadius:  DefaultMarkerRadius,
		segmentWidth:  DefaultSegmentWidth,
		segmentDash:   []float64{5, 5},
		palette:       DefaultPalette(),
		zoomModel:     ZoomLinear,
		zoomStep:      DefaultZoomStep,
		zoomPrecision: DefaultZoomPrecision,
		wheelBase:     DefaultWheelBase,
	}
}

// WithMarkerRadius sets the radius of point markers.
func WithMarkerRadius(r float64) Option {
	return func(o *options) {
		o.markerRadius = r
	}
}

// WithSegmentStyle sets the stroke width and dash pattern of segments.
// Passing no dash lengths draws solid segments.
func WithSegmentStyle(width float64, dash ...float64) Option {
	return func(o *options) {
		o.segmentWidth = width
		o.segmentDash = append([]float64(nil), dash...)
	}
}

// WithPalette sets the active/inactive colors.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithLinearZoom selects the linear wheel model with the given step.
func WithLinearZoom(step float64) Option {
	return func(o *options) {
		o.zoomModel = ZoomLinear
		o.zoomStep = step
	}
}

// WithZoomStep sets the ZoomIn/ZoomOut step without changing the wheel model.
func WithZoomStep(step float64) Option {
	return func(o *options) {
		o.zoomStep = step
	}
}

// WithExponentialZoom selects the exponential wheel model, where each wheel
// event scales the zoom by base^deltaY.
func WithExponentialZoom(base float64) Option {
	return func(o *options) {
		o.zoomModel = ZoomExponential
		o.wheelBase = base
	}
}

// WithZoomBounds overrides the model's clamp range.
func WithZoomBounds(minZoom, maxZoom float64) Option {
	return func(o *options) {
		o.zoomMin = minZoom
		o.zoomMax = maxZoom
	}
}

// WithZoomPrecision sets the number of decimals ZoomIn and ZoomOut round to.
func WithZoomPrecision(decimals int) Option {
	return func(o *options) {
		o.zoomPrecision = decimals
	}
}

// WithWheelAnchor sets the focal point of wheel zoom.
func WithWheelAnchor(a Anchor) Option {
	return func(o *options) {
		o.wheelAnchor = a
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider used for session
// metrics. The global provider is used by default.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// normalize replaces invalid values with defaults and resolves
// model-dependent settings.
func (o *options) normalize() {
	def := defaultOptions()
	if o.markerRadius <= 0 {
		o.markerRadius = def.markerRadius
	}
	if o.segmentWidth <= 0 {
		o.segmentWidth = def.segmentWidth
	}
	if o.zoomStep <= 0 {
		o.zoomStep = def.zoomStep
	}
	if o.wheelBase <= 0 || o.wheelBase >= 1 {
		o.wheelBase = def.wheelBase
	}
	if o.zoomPrecision < 0 {
		o.zoomPrecision = 0
	}
	// The rounding grid must be fine enough to represent one step,
	// otherwise ZoomIn would round back to the current value.
	if need := decimals(o.zoomStep); o.zoomPrecision < need {
		o.zoomPrecision = need
	}

	minDef, maxDef := DefaultLinearZoomMin, DefaultLinearZoomMax
	if o.zoomModel == ZoomExponential {
		minDef, maxDef = DefaultExponentialZoomMin, DefaultExponentialZoomMax
	}
	if o.zoomMin <= 0 {
		o.zoomMin = minDef
	}
	if o.zoomMax <= 0 {
		o.zoomMax = maxDef
	}
	if o.zoomMin > o.zoomMax {
		o.zoomMin, o.zoomMax = o.zoomMax, o.zoomMin
	}

	if o.wheelAnchor == AnchorDefault {
		o.wheelAnchor = AnchorCenter
		if o.zoomModel == ZoomExponential {
			o.wheelAnchor = AnchorPointer
		}
	}
}

// decimals returns the number of decimal places needed to write v exactly,
// capped at 10.
func decimals(v float64) int {
	n := 0
	for ; n < 10; n++ {
		scaled := v * math.Pow(10, float64(n))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*math.Max(1, scaled) {
			break
		}
	}
	return n
}

// markerStyle returns the style of a current or superseded marker.
func (o *options) markerStyle(active bool) Style {
	fill := o.palette.InactiveMarker
	if active {
		fill = o.palette.ActiveMarker
	}
	return Style{Fill: fill}
}

// segmentStyle returns the style of a current or superseded segment.
func (o *options) segmentStyle(active bool) Style {
	s := Style{
		Stroke:      o.palette.ActiveSegment,
		StrokeWidth: o.segmentWidth,
		Dash:        o.segmentDash,
	}
	if !active {
		s.Stroke = o.palette.InactiveSegment
		s.Opacity = o.palette.InactiveSegmentOpacity
	}
	return s
}
