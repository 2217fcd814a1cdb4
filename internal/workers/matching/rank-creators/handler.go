// internal/workers/matching/rank-creators/handler.go
package rankcreators

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
	TaskType = "rank-creators"
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
	if len(input.Creators) == 0 {
		return nil, apperrors.NewEmptyCreatorListError()
	}
	if input.Brand.Category == "" && input.Brand.Name == "" {
		return nil, apperrors.NewBrandContractViolatedError("brand profile requires at least a category or a name")
	}

	metrics.RankingBatchSize.Observe(float64(len(input.Creators)))

	ranking := scoring.RankCreatorsForBrandWithLimits(input.Creators, &input.Brand, h.config.Limits)
	for _, entry := range ranking.RankedCreators {
		metrics.CompatibilityEvaluations.WithLabelValues(entry.Rating.Label).Inc()
	}

	topUsername := ""
	if ranking.TopPick != nil {
		topUsername = ranking.TopPick.Username
	}
	h.logger.Info("creators ranked", map[string]interface{}{
		"brand":     input.Brand.Name,
		"category":  input.Brand.Category,
		"creators":  len(input.Creators),
		"topPick":   topUsername,
		"excellent": ranking.Summary.Excellent,
		"good":      ranking.Summary.Good,
	})

	return &Output{Ranking: ranking}, nil
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
