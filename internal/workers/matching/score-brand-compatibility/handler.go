// internal/workers/matching/score-brand-compatibility/handler.go
package scorebrandcompatibility

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/common/metrics"
	"creator-match-workers/internal/scoring"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "score-brand-compatibility"
)

type Handler struct {
	config       *Config
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		errorHandler: apperrors.NewErrorHandler(scoped),
		logger:       scoped,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errorHandler.HandleJobError(context.Background(), client, job,
			apperrors.NewInputValidationFailedError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if input.Creator == nil {
		return nil, apperrors.NewInputValidationFailedError("creator record is required")
	}
	if input.Brand.Category == "" && input.Brand.Name == "" {
		return nil, apperrors.NewBrandContractViolatedError("brand profile requires at least a category or a name")
	}

	result := scoring.ScoreBrandCompatibilityWithLimits(input.Creator, &input.Brand, h.config.Limits)
	metrics.CompatibilityEvaluations.WithLabelValues(result.Rating.Label).Inc()

	h.logger.Info("compatibility evaluated", map[string]interface{}{
		"username":     input.Creator.Username,
		"brand":        input.Brand.Name,
		"category":     input.Brand.Category,
		"overallScore": result.OverallScore,
		"rating":       result.Rating.Label,
		"action":       result.Recommendation.Action,
	})

	return &Output{
		Username:            input.Creator.Username,
		CompatibilityResult: result,
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
