package plans

// AggregateWeek groups a plan into the canonical seven-day week view.
// Every day is present even when it has no entries. Workout calories
// count toward the day total alongside meal calories; macros come from
// meals only, workouts do not contribute protein, carbs or fat.
func AggregateWeek(plan RawPlan) []DayAggregate {
	week := make([]DayAggregate, 0, len(daysOrder))
	for _, day := range daysOrder {
		agg := DayAggregate{
			Day:         day,
			DayFullName: dayFullNames[day],
			Workouts:    []WorkoutEntry{},
			Meals:       []MealEntry{},
		}

		for _, w := range plan.Workouts {
			if w.Day != day {
				continue
			}
			agg.Workouts = append(agg.Workouts, w)
			if w.BurnKcalEst != nil {
				agg.TotalKcal += *w.BurnKcalEst
			}
		}

		for _, m := range plan.Meals {
			if m.Day != day {
				continue
			}
			agg.Meals = append(agg.Meals, m)
			agg.TotalKcal += m.Kcal
			agg.TotalMacros.P += m.Macros.P
			agg.TotalMacros.C += m.Macros.C
			agg.TotalMacros.F += m.Macros.F
		}

		week = append(week, agg)
	}
	return week
}
