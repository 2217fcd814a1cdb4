// internal/workers/reporting/send-notification/handler_test.go
package sendnotification

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	apperrors "creator-match-workers/internal/common/errors"
	"creator-match-workers/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSES struct {
	sent []*ses.SendEmailInput
	err  error
}

func (m *mockSES) SendEmail(_ context.Context, params *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, params)
	return &ses.SendEmailOutput{}, nil
}

type mockSNS struct {
	published []*sns.PublishInput
	err       error
}

func (m *mockSNS) Publish(_ context.Context, params *sns.PublishInput) (*sns.PublishOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.published = append(m.published, params)
	return &sns.PublishOutput{}, nil
}

func newTestHandler(t *testing.T, db *sql.DB, sesMock *mockSES, snsMock *mockSNS) *Handler {
	t.Helper()
	scoped := logger.NewNoOpLogger()
	return &Handler{
		config: &Config{
			EmailEnabled: true,
			SMSEnabled:   true,
			FromEmail:    "reports@creatormatch.example",
			Timeout:      5 * time.Second,
		},
		db:           db,
		sesClient:    sesMock,
		snsClient:    snsMock,
		templates:    defaultTemplates(),
		errorHandler: apperrors.NewErrorHandler(scoped),
		logger:       scoped,
	}
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func expectSubscriber(mock sqlmock.Sqlmock, brand, email, phone string) {
	mock.ExpectQuery("SELECT email, phone FROM report_subscribers").
		WithArgs(brand).
		WillReturnRows(sqlmock.NewRows([]string{"email", "phone"}).AddRow(email, phone))
}

func TestHandler_Execute_EmailSent(t *testing.T) {
	db, mock := setupMockDB(t)
	expectSubscriber(mock, "FitCo", "marketing@fitco.example", "")

	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	handler := newTestHandler(t, db, sesMock, snsMock)

	output, err := handler.Execute(context.Background(), &Input{
		BrandName:        "FitCo",
		NotificationType: TypeReportReady,
		ReportID:         "report-1",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
	assert.NotEmpty(t, output.NotificationID)
	require.Len(t, sesMock.sent, 1)
	assert.Contains(t, *sesMock.sent[0].Message.Subject.Data, "FitCo")
	assert.Contains(t, *sesMock.sent[0].Message.Body.Text.Data, "report-1")
	assert.Empty(t, snsMock.published)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_HighPrioritySendsSMS(t *testing.T) {
	db, mock := setupMockDB(t)
	expectSubscriber(mock, "FitCo", "marketing@fitco.example", "+15551230000")

	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	handler := newTestHandler(t, db, sesMock, snsMock)

	output, err := handler.Execute(context.Background(), &Input{
		BrandName:        "FitCo",
		NotificationType: TypeTopPickAlert,
		ReportID:         "report-2",
		Priority:         "high",
		Metadata:         map[string]interface{}{"topPick": "topfit"},
	})

	require.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
	require.Len(t, snsMock.published, 1)
	assert.Equal(t, "+15551230000", *snsMock.published[0].PhoneNumber)
	assert.Contains(t, *snsMock.published[0].Message, "topfit")
}

func TestHandler_Execute_NormalPrioritySkipsSMS(t *testing.T) {
	db, mock := setupMockDB(t)
	expectSubscriber(mock, "FitCo", "marketing@fitco.example", "+15551230000")

	snsMock := &mockSNS{}
	handler := newTestHandler(t, db, &mockSES{}, snsMock)

	_, err := handler.Execute(context.Background(), &Input{
		BrandName:        "FitCo",
		NotificationType: TypeReportReady,
	})

	require.NoError(t, err)
	assert.Empty(t, snsMock.published)
}

func TestHandler_Execute_NoSubscriberIsDisabled(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT email, phone FROM report_subscribers").
		WithArgs("Unknown").
		WillReturnError(sql.ErrNoRows)

	handler := newTestHandler(t, db, &mockSES{}, &mockSNS{})

	output, err := handler.Execute(context.Background(), &Input{
		BrandName:        "Unknown",
		NotificationType: TypeReportReady,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
}

func TestHandler_Execute_UnknownType(t *testing.T) {
	db, _ := setupMockDB(t)
	handler := newTestHandler(t, db, &mockSES{}, &mockSNS{})

	_, err := handler.Execute(context.Background(), &Input{
		BrandName:        "FitCo",
		NotificationType: "carrier_pigeon",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_VALIDATION_FAILED")
}

func TestHandler_Execute_SendFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	expectSubscriber(mock, "FitCo", "marketing@fitco.example", "")

	handler := newTestHandler(t, db, &mockSES{err: errors.New("ses throttled")}, &mockSNS{})

	_, err := handler.Execute(context.Background(), &Input{
		BrandName:        "FitCo",
		NotificationType: TypeReportReady,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTIFICATION_SEND_FAILED")
}

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]interface{}
		expected string
	}{
		{
			name:     "string substitution",
			template: "Report for {{brandName}}",
			data:     map[string]interface{}{"brandName": "FitCo"},
			expected: "Report for FitCo",
		},
		{
			name:     "numeric substitution",
			template: "{{count}} creators ranked",
			data:     map[string]interface{}{"count": 7},
			expected: "7 creators ranked",
		},
		{
			name:     "unresolved placeholder stripped",
			template: "Hello {{missing}} there",
			data:     map[string]interface{}{},
			expected: "Hello  there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderTemplate(tt.template, tt.data))
		})
	}
}
