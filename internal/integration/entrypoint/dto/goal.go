package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Period       *string         `json:"period,omitempty" binding:"omitempty,oneof=monthly weekly yearly"`
	Metric       *string         `json:"metric,omitempty" binding:"omitempty,oneof=sales income"`
	SellerID     *string         `json:"seller_id,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	Period       *string          `json:"period,omitempty" binding:"omitempty,oneof=monthly weekly yearly"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	TargetAmount  decimal.Decimal  `json:"target_amount"`
	Period        string           `json:"period"`
	Metric        string           `json:"metric"`
	SellerID      *string          `json:"seller_id"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Percentage    *float64         `json:"percentage,omitempty"`
	Achieved      *bool            `json:"achieved,omitempty"`
	PeriodStart   *string          `json:"period_start,omitempty"`
	PeriodEnd     *string          `json:"period_end,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:           g.ID.String(),
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		Period:       string(g.Period),
		Metric:       string(g.Metric),
		SellerID:     optionalUUID(g.SellerID),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// ToGoalProgressResponse converts a goal with its progress to a GoalResponse DTO.
func ToGoalProgressResponse(p *entity.GoalProgress) GoalResponse {
	response := ToGoalResponse(p.Goal)
	current := p.CurrentAmount
	percentage := p.Percentage
	achieved := p.Achieved
	response.CurrentAmount = &current
	response.Percentage = &percentage
	response.Achieved = &achieved
	response.PeriodStart = formatOptionalDate(&p.PeriodStart)
	response.PeriodEnd = formatOptionalDate(&p.PeriodEnd)
	return response
}

// ToGoalListResponse converts goals with progress to a GoalListResponse.
func ToGoalListResponse(goals []*entity.GoalProgress) GoalListResponse {
	items := make([]GoalResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalProgressResponse(g)
	}
	return GoalListResponse{Goals: items}
}
