// internal/workers/reporting/push-ranking-report/handler.go
package pushrankingreport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
)

const (
	TaskType = "push-ranking-report"
)

type Handler struct {
	config       *Config
	client       *elasticsearch.Client
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, client *elasticsearch.Client, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		client:       client,
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if len(input.RankingReport) == 0 {
		return nil, apperrors.NewInputValidationFailedError("ranking report is required")
	}

	reportID := uuid.New().String()
	indexedAt := time.Now().UTC().Format(time.RFC3339)

	doc := make(map[string]interface{}, len(input.RankingReport)+2)
	for k, v := range input.RankingReport {
		doc[k] = v
	}
	doc["reportId"] = reportID
	doc["indexedAt"] = indexedAt

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, apperrors.NewReportBuildFailedError(fmt.Sprintf("serialize report document: %v", err))
	}

	req := esapi.IndexRequest{
		Index:      h.config.IndexName,
		DocumentID: reportID,
		Body:       bytes.NewReader(body),
		Refresh:    "false",
	}

	res, err := req.Do(ctx, h.client)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.NewQueryTimeoutError("index ranking report")
		}
		return nil, apperrors.NewReportIndexFailedError(reportID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return nil, apperrors.NewIndexNotFoundError(h.config.IndexName)
		}
		detail, _ := io.ReadAll(res.Body)
		return nil, apperrors.NewReportIndexFailedError(reportID,
			fmt.Errorf("elasticsearch returned %s: %s", res.Status(), string(detail)))
	}

	h.logger.Info("ranking report indexed", map[string]interface{}{
		"reportId": reportID,
		"index":    h.config.IndexName,
	})

	return &Output{
		ReportID:  reportID,
		Index:     h.config.IndexName,
		IndexedAt: indexedAt,
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
