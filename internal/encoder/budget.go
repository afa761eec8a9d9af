package encoder

import (
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/variant"
)

const (
	defaultStartQuality = 85
	defaultQualityFloor = 60
	defaultQualityStep  = 5
)

// FitToByteBudget re-encodes the source at a fixed width ("inside" fit, no
// height constraint), lowering quality stepwise until the output fits under
// targetSizeKB. When quality reaches the floor the last-produced buffer is
// returned regardless of size: graceful degradation, never an outright
// failure. The loop runs at most (start-floor)/step + 1 encodes.
func (e *ImageEncoder) FitToByteBudget(src []byte, maxWidth, targetSizeKB int, opts port.BudgetOptions) (port.BudgetResult, error) {
	start := opts.StartQuality
	if start <= 0 {
		start = defaultStartQuality
	}
	floor := opts.QualityFloor
	if floor <= 0 {
		floor = defaultQualityFloor
	}
	step := opts.QualityStep
	if step <= 0 {
		step = defaultQualityStep
	}

	img, err := decode(src)
	if err != nil {
		return port.BudgetResult{}, err
	}
	resized := resize(img, variant.SizeProfile{Width: maxWidth, Fit: variant.FitInside})

	quality := start
	for {
		out, err := encodeImage(resized, quality, port.FormatJPEG)
		if err != nil {
			return port.BudgetResult{}, err
		}

		if len(out.Bytes) <= targetSizeKB*1024 || quality <= floor {
			return port.BudgetResult{
				Image:   out,
				Quality: quality,
				SizeKB:  out.SizeKB(),
			}, nil
		}

		quality -= step
	}
}
