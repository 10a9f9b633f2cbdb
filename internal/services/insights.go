package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/yash314314/finance-tracking/internal/dto"
	"github.com/yash314314/finance-tracking/internal/models"
	"github.com/yash314314/finance-tracking/internal/types"
)

// significantChangePct is the month-over-month change (in percent) above which
// a category's trend is reported.
const significantChangePct = 20

// Insights derives qualitative spending facts from the full transaction and
// budget sets. "Current month" and "previous month" are taken from the passed
// reference time so callers control the clock.
//
// An entirely empty dataset yields a single insufficient_data fact instead of
// an empty list, so the caller can render a prompt rather than a blank panel.
func Insights(txns []models.Transaction, budgets []models.Budget, now time.Time) []dto.Insight {
	if len(txns) == 0 && len(budgets) == 0 {
		return []dto.Insight{{
			Kind:    dto.InsightInsufficientData,
			Message: "Add transactions and budgets to see spending insights.",
		}}
	}

	current := types.MonthOf(now)
	previous := current.AddDate(0, -1)

	currentExpenses := expensesByCategory(txns, current)
	previousExpenses := expensesByCategory(txns, previous)
	currentBudgets := budgetsForMonth(budgets, current)

	insights := budgetFacts(currentExpenses, currentBudgets, current)
	insights = append(insights, trendFacts(currentExpenses, previousExpenses)...)
	return insights
}

// budgetFacts compares the month's actuals against its budgets. A budget of 0
// is "not tracked" and produces neither an over- nor an under-budget fact.
func budgetFacts(actuals, budgeted map[string]float64, month types.Month) []dto.Insight {
	var over, under []dto.Insight
	for category, budget := range budgeted {
		if budget <= 0 {
			continue
		}
		actual := actuals[category]
		switch {
		case actual > budget:
			over = append(over, dto.Insight{
				Kind:     dto.InsightOverBudget,
				Category: category,
				Amount:   actual - budget,
				Message:  fmt.Sprintf("You are over budget in %s by $%.2f. Consider reviewing spending in this area.", category, actual-budget),
			})
		case actual < budget:
			under = append(under, dto.Insight{
				Kind:     dto.InsightUnderBudget,
				Category: category,
				Amount:   budget - actual,
				Message:  fmt.Sprintf("Great job! You are under budget in %s by $%.2f.", category, budget-actual),
			})
		}
	}

	sortByAmountDesc(over)
	sortByAmountDesc(under)

	facts := append(over, under...)
	if len(facts) == 0 && len(budgeted) > 0 {
		return []dto.Insight{{
			Kind:    dto.InsightOnTrack,
			Message: fmt.Sprintf("You are currently on track with your budgets for %s. Keep it up!", month.Label()),
		}}
	}
	if len(budgeted) == 0 {
		return []dto.Insight{{
			Kind:    dto.InsightNoBudgets,
			Message: fmt.Sprintf("No budgets set for %s. Set some budgets to get personalized insights!", month.Label()),
		}}
	}
	return facts
}

// trendFacts reports categories whose month-over-month spend moved by more
// than the significance threshold, largest absolute move first.
func trendFacts(current, previous map[string]float64) []dto.Insight {
	categories := map[string]struct{}{}
	for category := range current {
		categories[category] = struct{}{}
	}
	for category := range previous {
		categories[category] = struct{}{}
	}

	var changes []dto.Insight
	for category := range categories {
		change := percentChange(current[category], previous[category])
		switch {
		case change > significantChangePct:
			changes = append(changes, dto.Insight{
				Kind:          dto.InsightIncrease,
				Category:      category,
				PercentChange: change,
				Message:       fmt.Sprintf("Your spending in %s has increased by %.0f%% compared to last month.", category, change),
			})
		case change < -significantChangePct:
			changes = append(changes, dto.Insight{
				Kind:          dto.InsightDecrease,
				Category:      category,
				PercentChange: change,
				Message:       fmt.Sprintf("Your spending in %s has decreased by %.0f%% compared to last month.", category, math.Abs(change)),
			})
		}
	}

	if len(changes) == 0 {
		if len(current) > 0 && len(previous) > 0 {
			return []dto.Insight{{
				Kind:    dto.InsightStable,
				Message: "Your spending patterns are relatively stable compared to last month.",
			}}
		}
		return nil
	}

	sort.Slice(changes, func(i, j int) bool {
		ci := math.Abs(changes[i].PercentChange)
		cj := math.Abs(changes[j].PercentChange)
		if ci != cj {
			return ci > cj
		}
		return changes[i].Category < changes[j].Category
	})
	return changes
}

func sortByAmountDesc(facts []dto.Insight) {
	sort.Slice(facts, func(i, j int) bool {
		if facts[i].Amount != facts[j].Amount {
			return facts[i].Amount > facts[j].Amount
		}
		return facts[i].Category < facts[j].Category
	})
}
