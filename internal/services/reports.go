package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yash314314/finance-tracking/internal/dto"
	"github.com/yash314314/finance-tracking/internal/models"
	"github.com/yash314314/finance-tracking/internal/types"
)

// uncategorized is the bucket for expense transactions without a category.
const uncategorized = "Uncategorized"

// CategoryOrder selects the sort order of a category breakdown. The pie view
// wants largest-first, the comparison view wants alphabetical.
type CategoryOrder int

const (
	OrderTotalDesc CategoryOrder = iota
	OrderCategoryAsc
)

type reportTransactionStore interface {
	List(ctx context.Context) ([]models.Transaction, error)
}

type reportBudgetStore interface {
	List(ctx context.Context) ([]models.Budget, error)
}

type reportService struct {
	txs     reportTransactionStore
	budgets reportBudgetStore
	now     func() time.Time
}

func NewReportService(txs reportTransactionStore, budgets reportBudgetStore) *reportService {
	return &reportService{txs: txs, budgets: budgets, now: time.Now}
}

func (s *reportService) GetSummary(ctx context.Context) (dto.Summary, error) {
	txns, err := s.txs.List(ctx)
	if err != nil {
		return dto.Summary{}, err
	}
	return Summarize(txns), nil
}

func (s *reportService) GetMonthlyExpenses(ctx context.Context) ([]dto.MonthlyExpensePoint, error) {
	txns, err := s.txs.List(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyExpenseSeries(txns), nil
}

func (s *reportService) GetCategoryBreakdown(ctx context.Context, month types.Month, order CategoryOrder) ([]dto.CategorySlice, error) {
	txns, err := s.txs.List(ctx)
	if err != nil {
		return nil, err
	}
	return CategoryBreakdown(txns, month, order), nil
}

// GetBudgetComparison defaults to the current calendar month when the zero
// Month is passed.
func (s *reportService) GetBudgetComparison(ctx context.Context, month types.Month) ([]dto.BudgetComparisonRow, error) {
	if month.IsZero() {
		month = types.MonthOf(s.now())
	}
	txns, err := s.txs.List(ctx)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgets.List(ctx)
	if err != nil {
		return nil, err
	}
	return CompareBudgets(txns, budgets, month), nil
}

func (s *reportService) GetInsights(ctx context.Context) ([]dto.Insight, error) {
	txns, err := s.txs.List(ctx)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgets.List(ctx)
	if err != nil {
		return nil, err
	}
	return Insights(txns, budgets, s.now()), nil
}

// Summarize computes the headline income/expense/net totals over the whole
// transaction set.
func Summarize(txns []models.Transaction) dto.Summary {
	var summary dto.Summary
	for _, t := range txns {
		switch t.Type {
		case models.TypeIncome:
			summary.TotalIncome += t.Amount
		case models.TypeExpense:
			summary.TotalExpenses += t.Amount
		}
	}
	summary.NetBalance = summary.TotalIncome - summary.TotalExpenses
	return summary
}

// MonthlyExpenseSeries groups transactions by calendar month and sums their
// amounts into a series sorted by calendar time.
//
// Income and expense both contribute to a month's total. The tracker has
// always charted the monthly overview over every transaction regardless of
// type, and the headline totals in Summarize depend on the series summing to
// the full transaction set.
//
// Records with an unparsable date are skipped rather than failing the whole
// aggregation.
func MonthlyExpenseSeries(txns []models.Transaction) []dto.MonthlyExpensePoint {
	totals := map[string]float64{}
	months := map[string]types.Month{}
	for _, t := range txns {
		d, err := parseDate(t.Date)
		if err != nil {
			continue
		}
		m := types.MonthOf(d)
		label := m.Label()
		totals[label] += t.Amount
		months[label] = m
	}

	points := make([]dto.MonthlyExpensePoint, 0, len(totals))
	for label, total := range totals {
		points = append(points, dto.MonthlyExpensePoint{Month: label, Total: total})
	}

	// The labels don't sort as strings ("Apr 2024" < "Jan 2024"); order by the
	// month each label was derived from.
	sort.Slice(points, func(i, j int) bool {
		return months[points[i].Month].Before(months[points[j].Month])
	})
	return points
}

// CategoryBreakdown sums expense amounts per category, optionally restricted
// to one month (zero Month = all-time).
func CategoryBreakdown(txns []models.Transaction, month types.Month, order CategoryOrder) []dto.CategorySlice {
	totals := expensesByCategory(txns, month)

	slices := make([]dto.CategorySlice, 0, len(totals))
	for category, total := range totals {
		slices = append(slices, dto.CategorySlice{Category: category, Total: total})
	}

	switch order {
	case OrderCategoryAsc:
		c := collate.New(language.English)
		sort.Slice(slices, func(i, j int) bool {
			return c.CompareString(slices[i].Category, slices[j].Category) < 0
		})
	default:
		sort.Slice(slices, func(i, j int) bool {
			if slices[i].Total != slices[j].Total {
				return slices[i].Total > slices[j].Total
			}
			return slices[i].Category < slices[j].Category
		})
	}
	return slices
}

// CompareBudgets joins the month's budgets against its actual expenses. A
// category appears once if it has a budget, an expense, or both. A budget of 0
// means "not tracked" and never flags the category as over budget.
func CompareBudgets(txns []models.Transaction, budgets []models.Budget, month types.Month) []dto.BudgetComparisonRow {
	budgeted := budgetsForMonth(budgets, month)
	actual := expensesByCategory(txns, month)

	categories := map[string]struct{}{}
	for category := range budgeted {
		categories[category] = struct{}{}
	}
	for category := range actual {
		categories[category] = struct{}{}
	}

	rows := make([]dto.BudgetComparisonRow, 0, len(categories))
	for category := range categories {
		b := budgeted[category]
		a := actual[category]
		rows = append(rows, dto.BudgetComparisonRow{
			Category:     category,
			Budgeted:     b,
			Actual:       a,
			Difference:   b - a,
			IsOverBudget: a > b && b > 0,
		})
	}

	c := collate.New(language.English)
	sort.Slice(rows, func(i, j int) bool {
		return c.CompareString(rows[i].Category, rows[j].Category) < 0
	})
	return rows
}

// expensesByCategory sums positive expense amounts per category, optionally
// restricted to one month. Empty categories fall into the Uncategorized bucket
// and malformed dates are skipped.
func expensesByCategory(txns []models.Transaction, month types.Month) map[string]float64 {
	totals := map[string]float64{}
	for _, t := range txns {
		if t.Type != models.TypeExpense || t.Amount <= 0 {
			continue
		}
		d, err := parseDate(t.Date)
		if err != nil {
			continue
		}
		if !month.IsZero() && !month.Contains(d) {
			continue
		}
		category := t.Category
		if category == "" {
			category = uncategorized
		}
		totals[category] += t.Amount
	}
	return totals
}

// budgetsForMonth maps category to budgeted amount for one month. Budgets with
// a malformed month string are skipped.
func budgetsForMonth(budgets []models.Budget, month types.Month) map[string]float64 {
	amounts := map[string]float64{}
	for _, b := range budgets {
		m, err := types.ParseMonth(b.Month)
		if err != nil {
			continue
		}
		if m.Equal(month) {
			amounts[b.Category] = b.BudgetAmount
		}
	}
	return amounts
}

// percentChange follows the convention of the insight generator: a category
// appearing out of nowhere counts as +100%, a fully absent one as 0%.
func percentChange(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}
