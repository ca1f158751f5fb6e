package engine

import "github.com/piwi3910/PatternCut/internal/model"

// Ease is the movement allowance in cm added to circumference-derived widths.
const Ease = 2.0

// Fallback values (cm) used when a measurement is absent.
const (
	defaultCircumference = 100.0
	defaultBodiceLength  = 60.0
	defaultWrist         = 20.0
	defaultSleeveLength  = 60.0
	defaultWaist         = 70.0
	waistbandHeight      = 8.0
	strapAllowance       = 4.0
	genericWidth         = 30.0
	genericHeight        = 40.0
)

// PieceDimensions computes the bounding size of a piece from the
// measurements. Missing or unusable measurements fall back to fixed defaults,
// so the result is always finite. No rounding is applied.
func PieceDimensions(pieceName string, m model.Measurements, ease float64) model.Dimensions {
	switch model.KindOf(pieceName) {
	case model.KindFront, model.KindBack:
		return bodiceDimensions(m, ease)
	case model.KindSleeve:
		return sleeveDimensions(m)
	case model.KindWaistband:
		return waistbandDimensions(m)
	default:
		return model.Dimensions{Width: genericWidth, Height: genericHeight}
	}
}

// bodiceDimensions: a quarter of the bust (or waist) circumference plus ease,
// by the garment length.
func bodiceDimensions(m model.Measurements, ease float64) model.Dimensions {
	circ := m.First(defaultCircumference, model.MeasureBust, model.MeasureWaistCirc)
	return model.Dimensions{
		Width:  circ/4 + ease,
		Height: m.First(defaultBodiceLength, model.MeasureLength, model.MeasureTopLength),
	}
}

func sleeveDimensions(m model.Measurements) model.Dimensions {
	return model.Dimensions{
		Width:  m.First(defaultWrist, model.MeasureWristCirc) + strapAllowance,
		Height: m.First(defaultSleeveLength, model.MeasureSleeveLength),
	}
}

func waistbandDimensions(m model.Measurements) model.Dimensions {
	return model.Dimensions{
		Width:  m.First(defaultWaist, model.MeasureWaistCirc) + strapAllowance,
		Height: waistbandHeight,
	}
}
