// internal/workers/reporting/send-notification/handler.go
package sendnotification

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	commonaws "creator-match-workers/internal/common/aws"
	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "send-notification"
)

// Interfaces over the AWS clients so tests can substitute fakes.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput) (*sns.PublishOutput, error)
}

type Handler struct {
	config       *Config
	db           *sql.DB
	sesClient    SESService
	snsClient    SNSService
	templates    map[string]notificationTemplate
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

type notificationTemplate struct {
	Subject string
	Body    string
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) (*Handler, error) {
	sesClient, err := commonaws.NewSESClient(context.Background(), config.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("create SES client: %w", err)
	}
	snsClient, err := commonaws.NewSNSClient(context.Background(), config.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("create SNS client: %w", err)
	}

	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		sesClient:    sesClient,
		snsClient:    snsClient,
		templates:    defaultTemplates(),
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	template, exists := h.templates[input.NotificationType]
	if !exists {
		return nil, apperrors.NewInputValidationFailedError(
			fmt.Sprintf("unknown notification type: %s", input.NotificationType))
	}

	email, phone, err := h.getSubscriberContact(ctx, input.BrandName)
	if err != nil {
		// Brands without subscribers are a no-op, not a failure.
		h.logger.Warn("no subscriber found for brand", map[string]interface{}{
			"brandName": input.BrandName,
		})
		return &Output{
			NotificationID: uuid.New().String(),
			Status:         StatusDisabled,
			SentAt:         time.Now().UTC().Format(time.RFC3339),
		}, nil
	}

	data := map[string]interface{}{
		"brandName": input.BrandName,
		"reportId":  input.ReportID,
		"priority":  input.Priority,
	}
	for k, v := range input.Metadata {
		data[k] = v
	}

	subject := renderTemplate(template.Subject, data)
	body := renderTemplate(template.Body, data)

	notificationID := uuid.New().String()
	sentAt := time.Now().UTC().Format(time.RFC3339)

	emailSent := false
	smsSent := false

	if h.config.EmailEnabled && email != "" {
		if err := h.sendEmail(ctx, email, subject, body); err != nil {
			h.logger.Error("email send failed", map[string]interface{}{
				"error": err,
				"email": email,
			})
			return nil, apperrors.NewNotificationSendFailedError(input.NotificationType, err)
		}
		emailSent = true
	}

	// SMS is reserved for high-priority alerts.
	if h.config.SMSEnabled && phone != "" && input.Priority == "high" {
		if err := h.sendSMS(ctx, phone, body); err != nil {
			h.logger.Error("SMS send failed", map[string]interface{}{
				"error": err,
				"phone": phone,
			})
			return nil, apperrors.NewNotificationSendFailedError(input.NotificationType, err)
		}
		smsSent = true
	}

	status := StatusDisabled
	if emailSent || smsSent {
		status = StatusSent
	}

	h.logger.Info("notification processed", map[string]interface{}{
		"notificationId": notificationID,
		"brandName":      input.BrandName,
		"type":           input.NotificationType,
		"emailSent":      emailSent,
		"smsSent":        smsSent,
	})

	return &Output{
		NotificationID: notificationID,
		Status:         status,
		SentAt:         sentAt,
	}, nil
}

func (h *Handler) getSubscriberContact(ctx context.Context, brandName string) (string, string, error) {
	var email, phone string
	err := h.db.QueryRowContext(ctx,
		`SELECT email, phone FROM report_subscribers WHERE brand_name = $1`,
		brandName).Scan(&email, &phone)
	return email, phone, err
}

func (h *Handler) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := h.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
				Html: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(h.config.FromEmail),
	})
	return err
}

func (h *Handler) sendSMS(ctx context.Context, to, message string) error {
	_, err := h.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	})
	return err
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

// renderTemplate substitutes {{key}} placeholders and strips any that stay
// unresolved.
func renderTemplate(tmpl string, data map[string]interface{}) string {
	result := tmpl

	for k, v := range data {
		placeholder := "{{" + k + "}}"
		value := ""
		switch typed := v.(type) {
		case string:
			value = typed
		case nil:
		default:
			value = fmt.Sprintf("%v", typed)
		}
		result = strings.ReplaceAll(result, placeholder, value)
	}

	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		end += start + 2
		result = result[:start] + result[end:]
	}

	return result
}

func defaultTemplates() map[string]notificationTemplate {
	return map[string]notificationTemplate{
		TypeReportReady: {
			Subject: "Creator Ranking Report Ready for {{brandName}}",
			Body:    "Your creator compatibility report {{reportId}} is ready for review.",
		},
		TypeTopPickAlert: {
			Subject: "Top Creator Pick for {{brandName}}",
			Body:    "A top creator pick was identified in report {{reportId}}: {{topPick}}.",
		},
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
