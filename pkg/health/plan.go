package health

import "math"

const (
	// Healthy weight-loss pace band in kg per week.
	minWeeklyLossKg = 0.5
	maxWeeklyLossKg = 1.0

	// Energy content of one kilogram of body fat.
	kcalPerKgFat = 7700

	// Floor for any recommended daily intake.
	minDailyCalories = 1200
)

// CalorieNeeds is the estimated daily energy requirement for a profile.
type CalorieNeeds struct {
	BasalMetabolicRate int           `json:"basal_metabolic_rate"`
	DailyCalories      int           `json:"daily_calories"`
	ActivityLevel      ActivityLevel `json:"activity_level"`
	Multiplier         float64       `json:"multiplier"`
}

// ActivityCalories estimates basal metabolic rate with the Harris-Benedict
// equation and scales it by the activity level multiplier. Any gender other
// than male uses the female coefficient set.
func ActivityCalories(weightKg, heightCm float64, age int, gender Gender, level ActivityLevel) CalorieNeeds {
	var bmr float64
	if gender == GenderMale {
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	} else {
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}

	multiplier := level.multiplier()

	return CalorieNeeds{
		BasalMetabolicRate: int(math.Round(bmr)),
		DailyCalories:      int(math.Round(bmr * multiplier)),
		ActivityLevel:      level,
		Multiplier:         multiplier,
	}
}

// PlanInput is the biometric profile and goal for a weight-loss plan.
type PlanInput struct {
	CurrentWeight float64       `json:"current_weight"`
	TargetWeight  float64       `json:"target_weight"`
	HeightCm      float64       `json:"height_cm"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	TargetWeeks   int           `json:"target_weeks"`
}

// WeightLossPlan is a derived calorie and pace plan for reaching a target
// weight.
type WeightLossPlan struct {
	CurrentWeight       float64  `json:"current_weight"`
	TargetWeight        float64  `json:"target_weight"`
	WeightDifference    float64  `json:"weight_difference"`
	WeeklyLossKg        float64  `json:"weekly_loss_kg"`
	TargetWeeks         int      `json:"target_weeks"`
	DailyCalories       int      `json:"daily_calories"`
	TargetDailyCalories int      `json:"target_daily_calories"`
	DailyDeficit        int      `json:"daily_deficit"`
	IsHealthyPace       bool     `json:"is_healthy_pace"`
	Recommendations     []string `json:"recommendations"`
}

// BuildWeightLossPlan derives a weekly pace from the requested timeframe,
// clamps it into the healthy band, and converts it into a daily calorie
// deficit against the profile's estimated expenditure. The recommended
// intake never drops below the daily floor.
//
// When the naive pace falls outside the healthy band, a week count matching
// the clamped pace (ceil(|difference| / bound)) is implied but not
// propagated: the response keeps the weeks the caller asked for while the
// deficit and recommendations follow the clamped pace.
// TODO: decide whether target_weeks in the response should switch to the
// recomputed week count; callers currently rely on getting their own value
// back.
func BuildWeightLossPlan(in PlanInput) (WeightLossPlan, error) {
	if in.TargetWeeks <= 0 {
		return WeightLossPlan{}, ErrInvalidTimeframe
	}

	difference := in.TargetWeight - in.CurrentWeight
	weeklyLoss := math.Abs(difference) / float64(in.TargetWeeks)
	if weeklyLoss > maxWeeklyLossKg {
		weeklyLoss = maxWeeklyLossKg
	} else if weeklyLoss < minWeeklyLossKg {
		weeklyLoss = minWeeklyLossKg
	}

	needs := ActivityCalories(in.CurrentWeight, in.HeightCm, in.Age, in.Gender, in.ActivityLevel)

	dailyDeficit := weeklyLoss * kcalPerKgFat / 7
	targetCalories := math.Max(minDailyCalories, float64(needs.DailyCalories)-dailyDeficit)

	return WeightLossPlan{
		CurrentWeight:       in.CurrentWeight,
		TargetWeight:        in.TargetWeight,
		WeightDifference:    round1(difference),
		WeeklyLossKg:        round1(weeklyLoss),
		TargetWeeks:         in.TargetWeeks,
		DailyCalories:       needs.DailyCalories,
		TargetDailyCalories: int(math.Round(targetCalories)),
		DailyDeficit:        int(math.Round(dailyDeficit)),
		IsHealthyPace:       weeklyLoss >= minWeeklyLossKg && weeklyLoss <= maxWeeklyLossKg,
		Recommendations:     paceRecommendations(weeklyLoss),
	}, nil
}

// paceRecommendations returns advisory strings for a weekly loss pace.
func paceRecommendations(weeklyLoss float64) []string {
	var recommendations []string

	if weeklyLoss > maxWeeklyLossKg {
		recommendations = append(recommendations,
			"This pace is too fast. Aim for 0.5-1.0 kg per week instead.")
	} else if weeklyLoss < minWeeklyLossKg {
		recommendations = append(recommendations,
			"A more aggressive pace is possible. Increase exercise or tighten the diet.")
	} else {
		recommendations = append(recommendations,
			"This is a healthy weight-loss pace. Keep it up.")
	}

	if weeklyLoss > 0 {
		recommendations = append(recommendations,
			"Combine regular exercise with a balanced diet.",
			"Stay hydrated and get enough sleep.")
	}

	return recommendations
}
