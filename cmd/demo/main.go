// Demo walk through the locale resolver, formatters and health
// calculators with a sample profile.
// Usage: go run cmd/demo/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/carebridge/healthcore/internal/config"
	"github.com/carebridge/healthcore/internal/service"
	"github.com/carebridge/healthcore/internal/telemetry"
	"github.com/carebridge/healthcore/pkg/locale"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	shutdown, err := telemetry.InitTracer(ctx, cfg, "healthcore-demo")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("Failed to shut down tracing: %v", err)
		}
	}()

	healthSvc := service.NewHealthService()
	localeSvc := service.NewLocalizationService()

	fmt.Println("=== Health Calculations ===")

	bmi, err := healthSvc.BMI(ctx, &service.BMIRequest{WeightKg: 65, HeightCm: 170})
	if err != nil {
		log.Fatalf("BMI: %v", err)
	}
	fmt.Printf("BMI:          %.1f (%s) - %s\n", bmi.BMI, bmi.Category, bmi.Description)

	current, target, height := 70.0, 65.0, 170.0
	progress, err := healthSvc.Progress(ctx, &service.ProgressRequest{
		CurrentWeight: &current,
		TargetWeight:  &target,
		HeightCm:      &height,
	})
	if err != nil {
		log.Fatalf("Progress: %v", err)
	}
	fmt.Printf("Progress:     %.1f kg to go", *progress.WeightDifference)
	if progress.ProgressPercentage != nil {
		fmt.Printf(" (%.1f%% of the way to ideal)", *progress.ProgressPercentage)
	}
	fmt.Println()

	needs, err := healthSvc.DailyCalories(ctx, &service.CaloriesRequest{
		WeightKg:      65,
		HeightCm:      170,
		Age:           30,
		Gender:        "male",
		ActivityLevel: "moderate",
	})
	if err != nil {
		log.Fatalf("DailyCalories: %v", err)
	}
	fmt.Printf("Calories:     BMR %d kcal, daily %d kcal (x%.3f)\n",
		needs.BasalMetabolicRate, needs.DailyCalories, needs.Multiplier)

	plan, err := healthSvc.WeightLossPlan(ctx, &service.PlanRequest{
		CurrentWeight: 70,
		TargetWeight:  65,
		HeightCm:      170,
		Age:           30,
		Gender:        "male",
		ActivityLevel: "moderate",
		TargetWeeks:   8,
	})
	if err != nil {
		log.Fatalf("WeightLossPlan: %v", err)
	}
	fmt.Printf("Plan:         %.1f kg/week over %d weeks, eat %d kcal/day (deficit %d)\n",
		plan.WeeklyLossKg, plan.TargetWeeks, plan.TargetDailyCalories, plan.DailyDeficit)
	for _, r := range plan.Recommendations {
		fmt.Printf("  - %s\n", r)
	}

	fmt.Println()
	fmt.Println("=== Locale-Aware Formatting ===")

	prefs := localeSvc.Resolve(ctx, "ja,en;q=0.8", "Asia/Tokyo")
	fmt.Printf("Preferences:  lang=%s country=%s tz=%s currency=%s units=%s\n",
		prefs.Language, prefs.Country, prefs.Timezone, prefs.Currency, prefs.MeasurementUnit)

	weight, temp := 65.0, 36.6
	vitals := localeSvc.FormatVitals(ctx, &service.VitalsRequest{
		WeightKg:     &weight,
		HeightCm:     &height,
		TemperatureC: &temp,
	}, prefs)
	fmt.Printf("Vitals (JP):  weight=%s height=%s temp=%s\n",
		*vitals.Weight, *vitals.Height, *vitals.Temperature)

	stamp, err := localeSvc.FormatTimestamp(ctx, &service.TimestampRequest{
		Value: "2024-06-01T12:30:00Z",
	}, prefs)
	if err != nil {
		log.Fatalf("FormatTimestamp: %v", err)
	}
	fmt.Printf("Timestamp:    %s\n", stamp)
	fmt.Printf("Amount:       %s\n", localeSvc.FormatAmount(ctx, &service.AmountRequest{Amount: 1234.56}, prefs))

	usPrefs := localeSvc.Resolve(ctx, "en-US", "America/New_York")
	usVitals := localeSvc.FormatVitals(ctx, &service.VitalsRequest{
		WeightKg:     &weight,
		HeightCm:     &height,
		TemperatureC: &temp,
	}, usPrefs)
	fmt.Printf("Vitals (US):  weight=%s height=%s temp=%s\n",
		*usVitals.Weight, *usVitals.Height, *usVitals.Temperature)
	fmt.Printf("Amount (US):  %s\n", localeSvc.FormatAmount(ctx, &service.AmountRequest{Amount: 1234.56}, usPrefs))

	if lang, ok := locale.DetectLanguage("こんにちは、世界"); ok {
		fmt.Printf("Detected:     %s (direction %s)\n", lang, locale.Direction(lang))
	}
}
