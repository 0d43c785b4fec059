package health

import "math"

// ProgressInput carries the optional measurements for a progress report.
// Nil or zero-valued fields count as absent; dependent outputs are simply
// omitted instead of failing.
type ProgressInput struct {
	CurrentWeight *float64 `json:"current_weight,omitempty"`
	TargetWeight  *float64 `json:"target_weight,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty"`

	// Body fat percentages are accepted but not yet folded into the
	// progress computation.
	CurrentBodyFat *float64 `json:"current_body_fat,omitempty"`
	TargetBodyFat  *float64 `json:"target_body_fat,omitempty"`
}

// HealthProgress summarizes how far a user has moved toward a weight goal.
// Optional fields are present only when the inputs permit computing them.
type HealthProgress struct {
	CurrentWeight      *float64   `json:"current_weight,omitempty"`
	TargetWeight       *float64   `json:"target_weight,omitempty"`
	WeightDifference   *float64   `json:"weight_difference,omitempty"`
	ProgressPercentage *float64   `json:"progress_percentage,omitempty"`
	BMICurrent         *BMIResult `json:"bmi_current,omitempty"`
	BMITarget          *BMIResult `json:"bmi_target,omitempty"`
}

// Progress derives a goal progress summary. BMI values are computed for
// whichever weights have a height to pair with. The progress percentage
// measures movement toward the ideal weight: how much of the current
// distance from ideal the target closes, clamped to [0, 100]. It requires
// both weights, a height, a nonzero weight difference and a nonzero current
// distance; otherwise it stays unset. Negative measurements surface the
// underlying BMI error.
func Progress(in ProgressInput) (HealthProgress, error) {
	result := HealthProgress{
		CurrentWeight: in.CurrentWeight,
		TargetWeight:  in.TargetWeight,
	}

	if present(in.CurrentWeight) && present(in.HeightCm) {
		bmi, err := BMI(*in.CurrentWeight, *in.HeightCm)
		if err != nil {
			return HealthProgress{}, err
		}
		result.BMICurrent = &bmi
	}
	if present(in.TargetWeight) && present(in.HeightCm) {
		bmi, err := BMI(*in.TargetWeight, *in.HeightCm)
		if err != nil {
			return HealthProgress{}, err
		}
		result.BMITarget = &bmi
	}

	if present(in.CurrentWeight) && present(in.TargetWeight) {
		diff := round1(*in.TargetWeight - *in.CurrentWeight)
		result.WeightDifference = &diff

		if diff != 0 && present(in.HeightCm) {
			ideal := IdealWeight(*in.HeightCm, GenderMale)
			if ideal != 0 {
				currentDistance := math.Abs(*in.CurrentWeight - ideal)
				targetDistance := math.Abs(*in.TargetWeight - ideal)

				if currentDistance > 0 {
					pct := round1((1 - targetDistance/currentDistance) * 100)
					pct = math.Max(0, math.Min(100, pct))
					result.ProgressPercentage = &pct
				}
			}
		}
	}

	return result, nil
}

// present treats nil and zero the same way: as a missing measurement.
func present(v *float64) bool {
	return v != nil && *v != 0
}
