package core

import (
	"testing"
	"time"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -10}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:          "t1",
		Description: "Lunch",
		Amount:      Money{Cents: 1250},
		Date:        time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
		CategoryID:  "food",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Description: "", Amount: Money{Cents: 1}, Date: good.Date},
		{Description: "   ", Amount: Money{Cents: 1}, Date: good.Date},
		{Description: "a", Amount: Money{Cents: 0}, Date: good.Date},
		{Description: "a", Amount: Money{Cents: -5}, Date: good.Date},
		{Description: "a", Amount: Money{Cents: 1}}, // zero date
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestBudgetGoalValidate(t *testing.T) {
	cases := []struct {
		g  BudgetGoal
		ok bool
	}{
		{BudgetGoal{CategoryID: "food", Amount: Money{Cents: 10000}}, true},
		{BudgetGoal{CategoryID: "savings", Amount: Money{Cents: 0}}, true},
		{BudgetGoal{CategoryID: "food", Amount: Money{Cents: -1}}, false},
		{BudgetGoal{CategoryID: "nope", Amount: Money{Cents: 100}}, false},
	}
	for i, tc := range cases {
		err := tc.g.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestReminderValidate(t *testing.T) {
	when := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	if err := (Reminder{Title: "Pay rent", EventTime: when}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Reminder{Title: "", EventTime: when}).Validate(); err == nil {
		t.Fatalf("expected error for empty title")
	}
	if err := (Reminder{Title: "x"}).Validate(); err == nil {
		t.Fatalf("expected error for zero event time")
	}
}

func TestNoteValidate(t *testing.T) {
	if err := (Note{Title: "A", Content: "B"}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Note{Title: "", Content: "B"}).Validate(); err == nil {
		t.Fatalf("expected error for empty title")
	}
	if err := (Note{Title: "A", Content: " "}).Validate(); err == nil {
		t.Fatalf("expected error for empty content")
	}
}
