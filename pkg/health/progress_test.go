package health

import (
	"errors"
	"testing"
)

func fPtr(v float64) *float64 { return &v }

func TestProgress(t *testing.T) {
	tests := []struct {
		name       string
		in         ProgressInput
		wantDiff   *float64
		wantPct    *float64
		wantBMICur bool
		wantBMITgt bool
		wantErr    error
	}{
		{
			name: "full profile",
			in: ProgressInput{
				CurrentWeight: fPtr(70), TargetWeight: fPtr(65), HeightCm: fPtr(170),
			},
			wantDiff:   fPtr(-5),
			wantPct:    fPtr(78.1),
			wantBMICur: true,
			wantBMITgt: true,
		},
		{
			name: "target overshoots ideal on the other side",
			in: ProgressInput{
				CurrentWeight: fPtr(70), TargetWeight: fPtr(58), HeightCm: fPtr(170),
			},
			wantDiff:   fPtr(-12),
			wantPct:    fPtr(12.5),
			wantBMICur: true,
			wantBMITgt: true,
		},
		{
			name: "moving away from ideal clamps to zero",
			in: ProgressInput{
				CurrentWeight: fPtr(65), TargetWeight: fPtr(70), HeightCm: fPtr(170),
			},
			wantDiff:   fPtr(5),
			wantPct:    fPtr(0),
			wantBMICur: true,
			wantBMITgt: true,
		},
		{
			name: "equal weights yield zero difference and no percentage",
			in: ProgressInput{
				CurrentWeight: fPtr(70), TargetWeight: fPtr(70), HeightCm: fPtr(170),
			},
			wantDiff:   fPtr(0),
			wantBMICur: true,
			wantBMITgt: true,
		},
		{
			name: "no height skips BMI and percentage",
			in: ProgressInput{
				CurrentWeight: fPtr(70), TargetWeight: fPtr(65),
			},
			wantDiff: fPtr(-5),
		},
		{
			name: "zero height counts as missing",
			in: ProgressInput{
				CurrentWeight: fPtr(70), TargetWeight: fPtr(65), HeightCm: fPtr(0),
			},
			wantDiff: fPtr(-5),
		},
		{
			name: "only current weight",
			in: ProgressInput{
				CurrentWeight: fPtr(70), HeightCm: fPtr(170),
			},
			wantBMICur: true,
		},
		{
			name: "empty input",
			in:   ProgressInput{},
		},
		{
			name: "negative weight surfaces measurement error",
			in: ProgressInput{
				CurrentWeight: fPtr(-5), TargetWeight: fPtr(65), HeightCm: fPtr(170),
			},
			wantErr: ErrInvalidMeasurement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Progress(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Progress() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if (got.WeightDifference == nil) != (tt.wantDiff == nil) {
				t.Fatalf("WeightDifference = %v, want %v", got.WeightDifference, tt.wantDiff)
			}
			if tt.wantDiff != nil && *got.WeightDifference != *tt.wantDiff {
				t.Errorf("WeightDifference = %v, want %v", *got.WeightDifference, *tt.wantDiff)
			}

			if (got.ProgressPercentage == nil) != (tt.wantPct == nil) {
				t.Fatalf("ProgressPercentage = %v, want %v", got.ProgressPercentage, tt.wantPct)
			}
			if tt.wantPct != nil && *got.ProgressPercentage != *tt.wantPct {
				t.Errorf("ProgressPercentage = %v, want %v", *got.ProgressPercentage, *tt.wantPct)
			}

			if (got.BMICurrent != nil) != tt.wantBMICur {
				t.Errorf("BMICurrent present = %v, want %v", got.BMICurrent != nil, tt.wantBMICur)
			}
			if (got.BMITarget != nil) != tt.wantBMITgt {
				t.Errorf("BMITarget present = %v, want %v", got.BMITarget != nil, tt.wantBMITgt)
			}
		})
	}
}

func TestProgress_PassesInputsThrough(t *testing.T) {
	got, err := Progress(ProgressInput{CurrentWeight: fPtr(70), TargetWeight: fPtr(65), HeightCm: fPtr(170)})
	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if got.CurrentWeight == nil || *got.CurrentWeight != 70 {
		t.Errorf("CurrentWeight = %v, want 70", got.CurrentWeight)
	}
	if got.TargetWeight == nil || *got.TargetWeight != 65 {
		t.Errorf("TargetWeight = %v, want 65", got.TargetWeight)
	}
	if got.BMICurrent.BMI != 24.2 {
		t.Errorf("BMICurrent.BMI = %v, want 24.2", got.BMICurrent.BMI)
	}
	if got.BMITarget.BMI != 22.5 {
		t.Errorf("BMITarget.BMI = %v, want 22.5", got.BMITarget.BMI)
	}
}
