// internal/workers/reporting/build-ranking-report/handler.go
package buildrankingreport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "build-ranking-report"
)

type Handler struct {
	config       *Config
	activity     *registry.Activity
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

// NewHandler loads the activity registry so every built report can be
// checked against the declared output schema before it leaves the worker.
func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})

	reg, err := registry.LoadRegistry(config.RegistryPath)
	if err != nil {
		return nil, fmt.Errorf("load activity registry: %w", err)
	}
	activity, ok := reg.FindByTaskType(TaskType)
	if !ok {
		return nil, fmt.Errorf("task type %s not registered in %s", TaskType, config.RegistryPath)
	}

	return &Handler{
		config:       config,
		activity:     activity,
		errorHandler: apperrors.NewErrorHandler(scoped),
		logger:       scoped,
	}, nil
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
	ranking := input.Ranking
	if len(ranking.RankedCreators) == 0 {
		return nil, apperrors.NewReportBuildFailedError("ranking contains no creators")
	}

	topList := make([]TopEntry, 0, h.config.TopListSize)
	for i, entry := range ranking.RankedCreators {
		if i >= h.config.TopListSize {
			break
		}
		topList = append(topList, TopEntry{
			Rank:         i + 1,
			Username:     entry.Username,
			OverallScore: entry.OverallScore,
			Rating:       entry.Rating.Label,
			Action:       entry.Recommendation.Action,
		})
	}

	report := map[string]interface{}{
		"brandName":     ranking.BrandName,
		"brandCategory": ranking.BrandCategory,
		"generatedAt":   time.Now().UTC().Format(time.RFC3339),
		"creatorCount":  len(ranking.RankedCreators),
		"topList":       topList,
		"summary":       ranking.Summary,
		"ranking":       ranking,
	}

	// Schemas only see plain JSON types, so round-trip the typed pieces.
	normalized, err := normalize(report)
	if err != nil {
		return nil, apperrors.NewReportBuildFailedError(fmt.Sprintf("serialize report: %v", err))
	}

	if err := h.activity.ValidateOutput(normalized); err != nil {
		return nil, apperrors.NewReportSchemaInvalidError(err.Error())
	}

	h.logger.Info("ranking report built", map[string]interface{}{
		"brand":    ranking.BrandName,
		"creators": len(ranking.RankedCreators),
		"topList":  len(topList),
	})

	return &Output{RankingReport: normalized}, nil
}

func normalize(report map[string]interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
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
