package service

import (
	"context"
	"encoding/json"

	"github.com/carebridge/healthcore/internal/validation"
	"github.com/carebridge/healthcore/pkg/health"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "healthcore/service"

// BMIRequest is the payload for a BMI calculation.
type BMIRequest struct {
	// Weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0"`
	// Height in centimeters
	HeightCm float64 `json:"height_cm" validate:"required,gt=0"`
	// Optional client-generated ID for request correlation (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255"`
}

// ProgressRequest is the payload for a goal progress report. All
// measurements are optional; zero values count as absent.
type ProgressRequest struct {
	CurrentWeight   *float64 `json:"current_weight,omitempty"`
	TargetWeight    *float64 `json:"target_weight,omitempty"`
	HeightCm        *float64 `json:"height_cm,omitempty"`
	CurrentBodyFat  *float64 `json:"current_body_fat,omitempty"`
	TargetBodyFat   *float64 `json:"target_body_fat,omitempty"`
	ClientRequestID *string  `json:"client_request_id,omitempty" validate:"omitempty,max=255"`
}

// CaloriesRequest is the payload for a daily calorie estimate.
type CaloriesRequest struct {
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightCm float64 `json:"height_cm" validate:"required,gt=0"`
	Age      int     `json:"age" validate:"required,gt=0"`
	// Gender: male or female
	Gender health.Gender `json:"gender" validate:"required,oneof=male female"`
	// Activity level: low, moderate or high
	ActivityLevel   health.ActivityLevel `json:"activity_level" validate:"required,oneof=low moderate high"`
	ClientRequestID *string              `json:"client_request_id,omitempty" validate:"omitempty,max=255"`
}

// PlanRequest is the payload for a weight-loss plan.
type PlanRequest struct {
	CurrentWeight   float64              `json:"current_weight" validate:"required,gt=0"`
	TargetWeight    float64              `json:"target_weight" validate:"required,gt=0"`
	HeightCm        float64              `json:"height_cm" validate:"required,gt=0"`
	Age             int                  `json:"age" validate:"required,gt=0"`
	Gender          health.Gender        `json:"gender" validate:"required,oneof=male female"`
	ActivityLevel   health.ActivityLevel `json:"activity_level" validate:"required,oneof=low moderate high"`
	TargetWeeks     int                  `json:"target_weeks" validate:"required,gt=0"`
	ClientRequestID *string              `json:"client_request_id,omitempty" validate:"omitempty,max=255"`
}

// HealthService validates biometric requests and runs the calculators.
type HealthService interface {
	// BMI computes body mass index and its classification.
	BMI(ctx context.Context, req *BMIRequest) (*health.BMIResult, error)
	// Progress summarizes movement toward a weight goal.
	Progress(ctx context.Context, req *ProgressRequest) (*health.HealthProgress, error)
	// DailyCalories estimates basal metabolic rate and daily needs.
	DailyCalories(ctx context.Context, req *CaloriesRequest) (*health.CalorieNeeds, error)
	// WeightLossPlan derives a pace and calorie plan for a weight goal.
	WeightLossPlan(ctx context.Context, req *PlanRequest) (*health.WeightLossPlan, error)
}

type healthService struct{}

// NewHealthService creates a new HealthService.
func NewHealthService() HealthService {
	return &healthService{}
}

func (s *healthService) BMI(ctx context.Context, req *BMIRequest) (*health.BMIResult, error) {
	_, span := startSpan(ctx, "HealthService.BMI", req.ClientRequestID, req)
	defer span.End()

	if err := validation.Check(req); err != nil {
		return nil, err
	}

	result, err := health.BMI(req.WeightKg, req.HeightCm)
	if err != nil {
		return nil, err
	}

	recordResult(span, result)
	return &result, nil
}

func (s *healthService) Progress(ctx context.Context, req *ProgressRequest) (*health.HealthProgress, error) {
	_, span := startSpan(ctx, "HealthService.Progress", req.ClientRequestID, req)
	defer span.End()

	if err := validation.Check(req); err != nil {
		return nil, err
	}

	result, err := health.Progress(health.ProgressInput{
		CurrentWeight:  req.CurrentWeight,
		TargetWeight:   req.TargetWeight,
		HeightCm:       req.HeightCm,
		CurrentBodyFat: req.CurrentBodyFat,
		TargetBodyFat:  req.TargetBodyFat,
	})
	if err != nil {
		return nil, err
	}

	recordResult(span, result)
	return &result, nil
}

func (s *healthService) DailyCalories(ctx context.Context, req *CaloriesRequest) (*health.CalorieNeeds, error) {
	_, span := startSpan(ctx, "HealthService.DailyCalories", req.ClientRequestID, req)
	defer span.End()

	if err := validation.Check(req); err != nil {
		return nil, err
	}

	result := health.ActivityCalories(req.WeightKg, req.HeightCm, req.Age, req.Gender, req.ActivityLevel)

	recordResult(span, result)
	return &result, nil
}

func (s *healthService) WeightLossPlan(ctx context.Context, req *PlanRequest) (*health.WeightLossPlan, error) {
	_, span := startSpan(ctx, "HealthService.WeightLossPlan", req.ClientRequestID, req)
	defer span.End()

	if err := validation.Check(req); err != nil {
		return nil, err
	}

	result, err := health.BuildWeightLossPlan(health.PlanInput{
		CurrentWeight: req.CurrentWeight,
		TargetWeight:  req.TargetWeight,
		HeightCm:      req.HeightCm,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		TargetWeeks:   req.TargetWeeks,
	})
	if err != nil {
		return nil, err
	}

	recordResult(span, result)
	return &result, nil
}

// startSpan opens a span tagged with a correlation ID (client-provided or
// generated) and the JSON-encoded request payload.
func startSpan(ctx context.Context, name string, clientRequestID *string, payload any) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, name,
		trace.WithAttributes(
			attribute.String("request.id", requestID(clientRequestID)),
		),
	)
	if in, err := json.Marshal(payload); err == nil {
		span.SetAttributes(attribute.String("request.payload", string(in)))
	}
	return ctx, span
}

func recordResult(span trace.Span, result any) {
	if out, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("response.payload", string(out)))
	}
}
