package service

import (
	"context"
	"time"

	"github.com/carebridge/healthcore/internal/validation"
	"github.com/carebridge/healthcore/pkg/format"
	"github.com/carebridge/healthcore/pkg/locale"
	"github.com/carebridge/healthcore/pkg/timeutil"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// VitalsRequest carries raw measurements to render in the viewer's units.
// All measurements are optional.
type VitalsRequest struct {
	WeightKg     *float64 `json:"weight_kg,omitempty"`
	HeightCm     *float64 `json:"height_cm,omitempty"`
	TemperatureC *float64 `json:"temperature_c,omitempty"`
}

// Vitals holds measurement strings rendered in the viewer's unit system.
type Vitals struct {
	Weight      *string `json:"weight,omitempty"`
	Height      *string `json:"height,omitempty"`
	Temperature *string `json:"temperature,omitempty"`
}

// TimestampRequest carries an ISO 8601 timestamp to render for display.
type TimestampRequest struct {
	Value string `json:"value" validate:"required"`
}

// AmountRequest carries a monetary amount to render in the viewer's
// currency.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}

// LocalizationService resolves viewer preferences and renders values with
// them.
type LocalizationService interface {
	// Resolve derives display preferences from an Accept-Language header
	// and an IANA timezone. It never fails; unusable inputs fall back to
	// defaults.
	Resolve(ctx context.Context, acceptLanguage, timezone string) locale.Preferences
	// FormatVitals renders measurements in the preference's unit system.
	FormatVitals(ctx context.Context, req *VitalsRequest, prefs locale.Preferences) Vitals
	// FormatTimestamp parses an ISO 8601 timestamp and renders it in the
	// preference's timezone and date format.
	FormatTimestamp(ctx context.Context, req *TimestampRequest, prefs locale.Preferences) (string, error)
	// FormatAmount renders a monetary amount in the preference's currency.
	FormatAmount(ctx context.Context, req *AmountRequest, prefs locale.Preferences) string
}

type localizationService struct{}

// NewLocalizationService creates a new LocalizationService.
func NewLocalizationService() LocalizationService {
	return &localizationService{}
}

func (s *localizationService) Resolve(ctx context.Context, acceptLanguage, timezone string) locale.Preferences {
	_, span := otel.Tracer(tracerName).Start(ctx, "LocalizationService.Resolve",
		trace.WithAttributes(
			attribute.String("request.id", requestID(nil)),
			attribute.String("accept_language", acceptLanguage),
			attribute.String("timezone", timezone),
		),
	)
	defer span.End()

	prefs := locale.Resolve(acceptLanguage, timezone)
	recordResult(span, prefs)
	return prefs
}

func (s *localizationService) FormatVitals(ctx context.Context, req *VitalsRequest, prefs locale.Preferences) Vitals {
	_, span := startSpan(ctx, "LocalizationService.FormatVitals", nil, req)
	defer span.End()

	var vitals Vitals
	if req.WeightKg != nil {
		w := format.Weight(*req.WeightKg, prefs)
		vitals.Weight = &w
	}
	if req.HeightCm != nil {
		h := format.Height(*req.HeightCm, prefs)
		vitals.Height = &h
	}
	if req.TemperatureC != nil {
		t := format.Temperature(*req.TemperatureC, prefs)
		vitals.Temperature = &t
	}

	recordResult(span, vitals)
	return vitals
}

func (s *localizationService) FormatTimestamp(ctx context.Context, req *TimestampRequest, prefs locale.Preferences) (string, error) {
	_, span := startSpan(ctx, "LocalizationService.FormatTimestamp", nil, req)
	defer span.End()

	if err := validation.Check(req); err != nil {
		return "", err
	}

	t, err := time.Parse(time.RFC3339, req.Value)
	if err != nil {
		t, err = time.Parse(timeutil.APILayout, req.Value)
	}
	if err != nil {
		return "", err
	}

	out := format.DateTime(t, prefs)
	span.SetAttributes(attribute.String("response.payload", out))
	return out, nil
}

func (s *localizationService) FormatAmount(ctx context.Context, req *AmountRequest, prefs locale.Preferences) string {
	_, span := startSpan(ctx, "LocalizationService.FormatAmount", nil, req)
	defer span.End()

	out := format.Currency(req.Amount, prefs)
	span.SetAttributes(attribute.String("response.payload", out))
	return out
}

// requestID returns the client-provided correlation ID or generates one.
func requestID(clientRequestID *string) string {
	if clientRequestID != nil && *clientRequestID != "" {
		return *clientRequestID
	}
	return uuid.NewString()
}
