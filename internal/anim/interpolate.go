package anim

import "github.com/samber/lo"

// Opacity ramps measured from the bounds of the surface track
const (
	MiniFadeDistance     = 50.0
	ExpandedFadeDistance = 100.0
)

// Interpolate maps x from the input range to the output range, clamping to the
// output range. The input range may be descending.
func Interpolate(x float64, in, out [2]float64) float64 {
	span := in[1] - in[0]
	if span == 0 {
		if x >= in[1] {
			return out[1]
		}
		return out[0]
	}

	t := lo.Clamp((x-in[0])/span, 0, 1)
	return out[0] + t*(out[1]-out[0])
}

// MiniOpacity is the opacity of the collapsed (mini) view for position y
func MiniOpacity(y, collapsedOffset float64) float64 {
	return Interpolate(y, [2]float64{collapsedOffset - MiniFadeDistance, collapsedOffset}, [2]float64{0, 1})
}

// ExpandedOpacity is the opacity of the expanded view for position y
func ExpandedOpacity(y, expandedOffset float64) float64 {
	return Interpolate(y, [2]float64{expandedOffset + ExpandedFadeDistance, expandedOffset}, [2]float64{0, 1})
}
