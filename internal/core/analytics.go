package core

import "time"

// RecentLimit is how many of the newest transactions the dashboard shows.
const RecentLimit = 5

type (
	// Spending is the derived per-category row: amount spent this month
	// against the category's goal. One row per fixed category, always.
	Spending struct {
		CategoryID string `json:"categoryId"`
		Name       string `json:"name"`
		Spent      Money  `json:"spent"`
		Budget     Money  `json:"budget"`
		Color      string `json:"color"`
	}

	// MonthSummary is the dashboard view model for the current calendar
	// month. Derived on every read, never stored.
	MonthSummary struct {
		TotalSpent         Money         `json:"totalSpent"`
		TotalBudget        Money         `json:"totalBudget"`
		RemainingBudget    Money         `json:"remainingBudget"`
		SpendingByCategory []Spending    `json:"spendingByCategory"`
		RecentTransactions []Transaction `json:"recentTransactions"`
	}
)

// Progress is the spent/budget ratio as a percentage for progress bars.
// A category without a budget reports exactly 0, never NaN or Inf.
func (s Spending) Progress() float64 {
	if s.Budget.Cents <= 0 {
		return 0
	}
	return float64(s.Spent.Cents) / float64(s.Budget.Cents) * 100
}

// StartOfMonth returns the first instant of now's calendar month in now's
// location.
func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// Summarize projects the current store snapshot onto the dashboard view
// model. Transactions must be in stored (newest-first) order; the recent
// list is taken from the front without re-sorting.
//
// Total budget is the sum of all per-category goal amounts; remaining may
// go negative when the month is over budget.
func Summarize(transactions []Transaction, goals []BudgetGoal, now time.Time) MonthSummary {
	start := StartOfMonth(now)

	var monthly []Transaction
	for _, t := range transactions {
		if !t.Date.Before(start) {
			monthly = append(monthly, t)
		}
	}

	var totalSpent int64
	spentByCategory := make(map[string]int64, len(Categories))
	for _, t := range monthly {
		totalSpent += t.Amount.Cents
		spentByCategory[t.CategoryID] += t.Amount.Cents
	}

	var totalBudget int64
	budgetByCategory := make(map[string]int64, len(goals))
	for _, g := range goals {
		totalBudget += g.Amount.Cents
		budgetByCategory[g.CategoryID] = g.Amount.Cents
	}

	spending := make([]Spending, 0, len(Categories))
	for _, c := range Categories {
		spending = append(spending, Spending{
			CategoryID: c.ID,
			Name:       c.Name,
			Spent:      Money{Cents: spentByCategory[c.ID]},
			Budget:     Money{Cents: budgetByCategory[c.ID]},
			Color:      c.Color,
		})
	}

	recent := transactions
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	// Copy so callers cannot alias the store's backing array.
	recentCopy := make([]Transaction, len(recent))
	copy(recentCopy, recent)

	return MonthSummary{
		TotalSpent:         Money{Cents: totalSpent},
		TotalBudget:        Money{Cents: totalBudget},
		RemainingBudget:    Money{Cents: totalBudget - totalSpent},
		SpendingByCategory: spending,
		RecentTransactions: recentCopy,
	}
}
