package goal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/usecase/usecasetest"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func fixedDay(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
}

func TestCreateGoal_Validation(t *testing.T) {
	userID := uuid.New()
	seller := entity.NewSeller(userID, "Marina", "", decimal.NewFromInt(10))
	weekly := entity.GoalPeriodWeekly
	daily := entity.GoalPeriod("daily")
	income := entity.GoalMetricIncome
	unknownSeller := uuid.New()

	tests := []struct {
		name     string
		input    CreateGoalInput
		expected error
	}{
		{
			name:     "non positive target",
			input:    CreateGoalInput{Name: "Meta", TargetAmount: decimal.Zero},
			expected: domainerror.ErrInvalidTargetAmount,
		},
		{
			name:     "unknown period",
			input:    CreateGoalInput{Name: "Meta", TargetAmount: decimal.NewFromInt(10), Period: &daily},
			expected: domainerror.ErrInvalidGoalPeriod,
		},
		{
			name:     "income goal with seller",
			input:    CreateGoalInput{Name: "Meta", TargetAmount: decimal.NewFromInt(10), Metric: &income, SellerID: &seller.ID},
			expected: domainerror.ErrInvalidGoalMetric,
		},
		{
			name:     "unknown seller",
			input:    CreateGoalInput{Name: "Meta", TargetAmount: decimal.NewFromInt(10), Period: &weekly, SellerID: &unknownSeller},
			expected: domainerror.ErrGoalSellerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = userID
			uc := NewCreateGoalUseCase(usecasetest.NewGoalRepository(), usecasetest.NewSellerRepository(seller))
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}

	t.Run("defaults to monthly sales", func(t *testing.T) {
		uc := NewCreateGoalUseCase(usecasetest.NewGoalRepository(), usecasetest.NewSellerRepository(seller))
		output, err := uc.Execute(context.Background(), CreateGoalInput{UserID: userID, Name: " Meta de março ", TargetAmount: decimal.NewFromInt(5000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Period != entity.GoalPeriodMonthly || output.Goal.Metric != entity.GoalMetricSales || output.Goal.Name != "Meta de março" {
			t.Errorf("unexpected goal: %+v", output.Goal)
		}
	})
}

func TestGetGoal_Progress(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	seller := entity.NewSeller(userID, "Marina", "", decimal.NewFromInt(10))

	sales := usecasetest.NewSaleRepository(
		entity.NewSale(userID, &seller.ID, "", "Venda", decimal.NewFromInt(300), time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), "pix"),
		entity.NewSale(userID, nil, "", "Venda", decimal.NewFromInt(200), time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), "pix"),
		// Previous week
		entity.NewSale(userID, &seller.ID, "", "Venda", decimal.NewFromInt(999), time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), "pix"),
	)
	incomes := usecasetest.NewIncomeRepository(
		entity.NewIncome(userID, "Repasse", decimal.NewFromInt(50), time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), nil, "pix"),
	)

	weeklySeller := entity.NewGoal(userID, "Semana Marina", decimal.NewFromInt(600), entity.GoalPeriodWeekly, entity.GoalMetricSales, &seller.ID)
	weeklyAll := entity.NewGoal(userID, "Semana loja", decimal.NewFromInt(400), entity.GoalPeriodWeekly, entity.GoalMetricSales, nil)
	monthlyIncome := entity.NewGoal(userID, "Repasses", decimal.NewFromInt(200), entity.GoalPeriodMonthly, entity.GoalMetricIncome, nil)
	goals := usecasetest.NewGoalRepository(weeklySeller, weeklyAll, monthlyIncome)

	uc := NewGetGoalUseCase(goals, sales, incomes)
	// Wednesday; the week runs Monday 3 to Sunday 9.
	uc.calculator.now = fixedDay(2025, time.March, 5)

	tests := []struct {
		goal       *entity.Goal
		current    string
		percentage float64
		achieved   bool
		start      string
		end        string
	}{
		{weeklySeller, "300", 50, false, "2025-03-03", "2025-03-09"},
		{weeklyAll, "500", 125, true, "2025-03-03", "2025-03-09"},
		{monthlyIncome, "50", 25, false, "2025-03-01", "2025-03-31"},
	}

	for _, tt := range tests {
		t.Run(tt.goal.Name, func(t *testing.T) {
			output, err := uc.Execute(ctx, GetGoalInput{GoalID: tt.goal.ID, UserID: userID})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			p := output.Goal
			if !p.CurrentAmount.Equal(decimal.RequireFromString(tt.current)) {
				t.Errorf("expected current %s, got %s", tt.current, p.CurrentAmount)
			}
			if p.Percentage != tt.percentage || p.Achieved != tt.achieved {
				t.Errorf("expected %.2f%% achieved=%v, got %.2f%% achieved=%v", tt.percentage, tt.achieved, p.Percentage, p.Achieved)
			}
			if p.PeriodStart.Format(entity.DateLayout) != tt.start || p.PeriodEnd.Format(entity.DateLayout) != tt.end {
				t.Errorf("expected period %s..%s, got %s..%s", tt.start, tt.end,
					p.PeriodStart.Format(entity.DateLayout), p.PeriodEnd.Format(entity.DateLayout))
			}
		})
	}

	t.Run("other user", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetGoalInput{GoalID: weeklyAll.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Errorf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})
}

func TestListGoals(t *testing.T) {
	userID := uuid.New()
	goals := usecasetest.NewGoalRepository(
		entity.NewGoal(userID, "A", decimal.NewFromInt(100), entity.GoalPeriodYearly, entity.GoalMetricSales, nil),
		entity.NewGoal(uuid.New(), "B", decimal.NewFromInt(100), entity.GoalPeriodYearly, entity.GoalMetricSales, nil),
	)

	output, err := NewListGoalsUseCase(goals, usecasetest.NewSaleRepository(), usecasetest.NewIncomeRepository()).
		Execute(context.Background(), ListGoalsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Goals) != 1 || output.Goals[0].Goal.Name != "A" {
		t.Errorf("expected only the user's goal, got %d", len(output.Goals))
	}
	if !output.Goals[0].CurrentAmount.IsZero() || output.Goals[0].Achieved {
		t.Error("expected no progress")
	}
}

func TestListGoals_Filters(t *testing.T) {
	userID := uuid.New()
	sellerID := uuid.New()
	goals := usecasetest.NewGoalRepository(
		entity.NewGoal(userID, "Loja", decimal.NewFromInt(100), entity.GoalPeriodMonthly, entity.GoalMetricSales, nil),
		entity.NewGoal(userID, "Marina", decimal.NewFromInt(100), entity.GoalPeriodMonthly, entity.GoalMetricSales, &sellerID),
		entity.NewGoal(userID, "Aluguéis", decimal.NewFromInt(100), entity.GoalPeriodMonthly, entity.GoalMetricIncome, nil),
	)
	uc := NewListGoalsUseCase(goals, usecasetest.NewSaleRepository(), usecasetest.NewIncomeRepository())

	sales := entity.GoalMetricSales
	income := entity.GoalMetricIncome
	unknown := entity.GoalMetric("visits")

	tests := []struct {
		name    string
		input   ListGoalsInput
		want    []string
		wantErr error
	}{
		{name: "all", input: ListGoalsInput{UserID: userID}, want: []string{"Aluguéis", "Loja", "Marina"}},
		{name: "sales", input: ListGoalsInput{UserID: userID, Metric: &sales}, want: []string{"Loja", "Marina"}},
		{name: "income", input: ListGoalsInput{UserID: userID, Metric: &income}, want: []string{"Aluguéis"}},
		{name: "seller", input: ListGoalsInput{UserID: userID, SellerID: &sellerID}, want: []string{"Marina"}},
		{name: "unknown metric", input: ListGoalsInput{UserID: userID, Metric: &unknown}, wantErr: domainerror.ErrInvalidGoalMetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := make([]string, len(output.Goals))
			for i, g := range output.Goals {
				got[i] = g.Goal.Name
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPeriodBounds(t *testing.T) {
	sunday := time.Date(2025, time.March, 9, 18, 30, 0, 0, time.UTC)

	start, end := entity.GoalPeriodWeekly.PeriodBounds(sunday)
	if start.Weekday() != time.Monday || start.Day() != 3 || end.Day() != 9 {
		t.Errorf("expected Mon 3 to Sun 9, got %s to %s", start, end)
	}

	start, end = entity.GoalPeriodMonthly.PeriodBounds(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	if start.Day() != 1 || end.Day() != 29 {
		t.Errorf("expected Feb 1 to 29 in a leap year, got %s to %s", start, end)
	}

	start, end = entity.GoalPeriodYearly.PeriodBounds(sunday)
	if start.YearDay() != 1 || end.Month() != time.December || end.Day() != 31 {
		t.Errorf("expected the whole year, got %s to %s", start, end)
	}
}
