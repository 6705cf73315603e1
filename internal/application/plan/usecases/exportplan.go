package usecases

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/application/plan/dto"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/errors"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/mapper"
)

const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)

type ExportPlanQuery struct {
	PlanID   uint
	CallerID uint
	Format   string
}

type ExportPlanResult struct {
	Body        []byte
	ContentType string
	Filename    string
}

type ExportPlanUseCase struct {
	planRepo   plan.Repository
	entryRepo  itinerary.Repository
	membership *services.MembershipService
	logger     logger.Interface
}

func NewExportPlanUseCase(
	planRepo plan.Repository,
	entryRepo itinerary.Repository,
	membership *services.MembershipService,
	logger logger.Interface,
) *ExportPlanUseCase {
	return &ExportPlanUseCase{
		planRepo:   planRepo,
		entryRepo:  entryRepo,
		membership: membership,
		logger:     logger,
	}
}

func (uc *ExportPlanUseCase) Execute(ctx context.Context, query ExportPlanQuery) (*ExportPlanResult, error) {
	format := strings.ToLower(strings.TrimSpace(query.Format))
	if format == "" {
		format = ExportFormatJSON
	}
	if format != ExportFormatJSON && format != ExportFormatYAML {
		return nil, errors.NewValidationError("unsupported export format", query.Format)
	}

	p, err := uc.planRepo.GetByID(ctx, query.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if p == nil {
		return nil, plan.ErrPlanNotFound
	}
	if err := uc.membership.RequireAccepted(ctx, p.ID(), query.CallerID); err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list plan details: %w", err)
	}
	doc := dto.ExportDocument{
		Plan: *dto.ToPlanDTO(p),
		Entries: mapper.MapSlice(entries, func(e *itinerary.Entry) dto.ExportEntry {
			return dto.ExportEntry{
				ID:        e.ID(),
				PlaceID:   e.PlaceID(),
				MemberID:  e.MemberID(),
				Title:     e.Title(),
				Content:   e.Content(),
				StartTime: e.StartTime(),
				EndTime:   e.EndTime(),
			}
		}),
	}

	result := &ExportPlanResult{Filename: fmt.Sprintf("plan-%d.%s", p.ID(), format)}
	switch format {
	case ExportFormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode plan as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode plan as yaml: %w", err)
		}
		result.Body = buf.Bytes()
		result.ContentType = "application/yaml"
	default:
		body, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode plan as json: %w", err)
		}
		result.Body = body
		result.ContentType = "application/json"
	}

	uc.logger.Infow("plan exported", "plan_id", p.ID(), "format", format, "entries", len(entries))
	return result, nil
}
