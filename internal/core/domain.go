package core

import (
	"errors"
	"strings"
	"time"
)

type (
	Money struct {
		Cents int64
	}

	// Transaction is a single spending entry. Immutable after creation;
	// the only mutation the store allows is deletion.
	Transaction struct {
		ID          string    `json:"id"`
		Description string    `json:"description"`
		Amount      Money     `json:"amount"`
		Date        time.Time `json:"date"`
		CategoryID  string    `json:"categoryId"`
	}

	// BudgetGoal is the monthly target for one category. The store keeps
	// at most one goal per category.
	BudgetGoal struct {
		CategoryID string `json:"categoryId"`
		Amount     Money  `json:"amount"`
	}

	Reminder struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		EventTime time.Time `json:"eventTime"`
	}

	Note struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyTitle       = errors.New("empty title")
	ErrEmptyContent     = errors.New("empty content")
	ErrZeroEventTime    = errors.New("event time not set")
)

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

func (g BudgetGoal) Validate() error {
	// Zero is a valid goal: the category simply has no budget.
	if g.Amount.Cents < 0 {
		return ErrInvalidAmount
	}
	if _, ok := CategoryByID(g.CategoryID); !ok {
		return errors.New("unknown category: " + g.CategoryID)
	}
	return nil
}

func (r Reminder) Validate() error {
	if len(strings.TrimSpace(r.Title)) == 0 {
		return ErrEmptyTitle
	}
	if r.EventTime.IsZero() {
		return ErrZeroEventTime
	}
	return nil
}

func (n Note) Validate() error {
	if len(strings.TrimSpace(n.Title)) == 0 {
		return ErrEmptyTitle
	}
	if len(strings.TrimSpace(n.Content)) == 0 {
		return ErrEmptyContent
	}
	return nil
}
