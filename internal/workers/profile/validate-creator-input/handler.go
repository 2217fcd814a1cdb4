// internal/workers/profile/validate-creator-input/handler.go
package validatecreatorinput

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/common/validation"
	"creator-match-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-creator-input"
)

type Handler struct {
	config       *Config
	schema       validation.JSONSchema
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		schema:       validation.CreatorProfileSchema(config.MaxFollowers, config.MaxBioLength),
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
	if input.Brand.Category == "" && input.Brand.Name == "" {
		return nil, apperrors.NewBrandContractViolatedError("brand profile requires at least a category or a name")
	}

	records := input.Creators
	if input.Creator != nil {
		records = append([]map[string]interface{}{input.Creator}, records...)
	}
	if len(records) == 0 {
		return nil, apperrors.NewInputValidationFailedError("no creator records provided")
	}

	var valid []models.CreatorProfile
	var rejected []RejectedCreator

	for _, record := range records {
		result := validation.ValidateInput(record, h.schema)
		if !result.Valid {
			rejected = append(rejected, RejectedCreator{
				Username: usernameOf(record),
				Errors:   flattenErrors(result.Errors),
			})
			continue
		}

		profile, err := toProfile(record)
		if err != nil {
			rejected = append(rejected, RejectedCreator{
				Username: usernameOf(record),
				Errors:   []string{fmt.Sprintf("decode creator record: %v", err)},
			})
			continue
		}
		valid = append(valid, *profile)
	}

	if len(valid) == 0 {
		return nil, apperrors.NewInputValidationFailedError(
			fmt.Sprintf("all %d creator record(s) failed validation", len(records)))
	}

	h.logger.Info("creator input validated", map[string]interface{}{
		"valid":    len(valid),
		"rejected": len(rejected),
	})

	return &Output{
		Valid:            len(rejected) == 0,
		ValidCreators:    valid,
		RejectedCreators: rejected,
		Brand:            input.Brand,
	}, nil
}

// toProfile round-trips the raw record through JSON so the schema-checked
// map lands in the typed struct with the same tag rules everywhere else uses.
func toProfile(record map[string]interface{}) (*models.CreatorProfile, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var profile models.CreatorProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func usernameOf(record map[string]interface{}) string {
	if username, ok := record["username"].(string); ok {
		return username
	}
	return ""
}

func flattenErrors(errs []validation.ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return out
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
