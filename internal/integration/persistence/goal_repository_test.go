package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func TestGoalRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))

	userID := uuid.New()
	sellerID := uuid.New()
	for _, g := range []*entity.Goal{
		entity.NewGoal(userID, "Marina", decimal.NewFromInt(500), entity.GoalPeriodWeekly, entity.GoalMetricSales, &sellerID),
		entity.NewGoal(userID, "Loja", decimal.NewFromInt(5000), entity.GoalPeriodMonthly, entity.GoalMetricSales, nil),
		entity.NewGoal(userID, "Aluguéis", decimal.NewFromInt(800), entity.GoalPeriodMonthly, entity.GoalMetricIncome, nil),
		entity.NewGoal(uuid.New(), "Outra loja", decimal.NewFromInt(100), entity.GoalPeriodMonthly, entity.GoalMetricSales, nil),
	} {
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	sales := entity.GoalMetricSales
	tests := []struct {
		name   string
		filter adapter.GoalFilter
		want   int
	}{
		{name: "user scope", filter: adapter.GoalFilter{UserID: userID}, want: 3},
		{name: "by metric", filter: adapter.GoalFilter{UserID: userID, Metric: &sales}, want: 2},
		{name: "by seller", filter: adapter.GoalFilter{UserID: userID, SellerID: &sellerID}, want: 1},
		{name: "unknown user", filter: adapter.GoalFilter{UserID: uuid.New()}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goals, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(goals) != tt.want {
				t.Errorf("expected %d goals, got %d", tt.want, len(goals))
			}
		})
	}
}

func TestGoalRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))

	goal := entity.NewGoal(uuid.New(), "Loja", decimal.NewFromInt(5000), entity.GoalPeriodMonthly, entity.GoalMetricSales, nil)
	if err := repo.Create(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	goal.Name = "Loja (meta alta)"
	goal.TargetAmount = decimal.RequireFromString("7500.50")
	goal.Period = entity.GoalPeriodYearly
	goal.UpdatedAt = time.Now().UTC()
	if err := repo.Update(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Name != "Loja (meta alta)" || !stored.TargetAmount.Equal(goal.TargetAmount) || stored.Period != entity.GoalPeriodYearly {
		t.Errorf("update not persisted: %+v", stored)
	}

	if err := repo.Delete(ctx, goal.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, goal.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, goal.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound on second delete, got %v", err)
	}
	if err := repo.Update(ctx, goal); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound updating a deleted goal, got %v", err)
	}
}
