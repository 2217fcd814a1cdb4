// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeProfileFetchFailed    ErrorCode = "PROFILE_FETCH_FAILED"
	ErrCodeProfileNotFound       ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeScraperTimeout        ErrorCode = "SCRAPER_TIMEOUT"
	ErrCodeScraperAuthFailed     ErrorCode = "SCRAPER_AUTH_FAILED"
	ErrCodeCacheUnavailable      ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeInputValidationFailed ErrorCode = "INPUT_VALIDATION_FAILED"
	ErrCodeBrandContractViolated ErrorCode = "BRAND_CONTRACT_VIOLATED"

	ErrCodeCompatibilityScoreFailed ErrorCode = "COMPATIBILITY_SCORE_FAILED"
	ErrCodeRankingFailed            ErrorCode = "RANKING_FAILED"
	ErrCodeEmptyCreatorList         ErrorCode = "EMPTY_CREATOR_LIST"

	ErrCodeReportBuildFailed      ErrorCode = "REPORT_BUILD_FAILED"
	ErrCodeReportSchemaInvalid    ErrorCode = "REPORT_SCHEMA_INVALID"
	ErrCodeReportIndexFailed      ErrorCode = "REPORT_INDEX_FAILED"
	ErrCodeIndexNotFound          ErrorCode = "INDEX_NOT_FOUND"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// BPMNErrorMapping maps internal codes to the error codes declared on BPMN
// boundary events. Codes absent here pass through unchanged.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeProfileNotFound:       "PROFILE_NOT_FOUND",
	ErrCodeEmptyCreatorList:      "RANKING_FAILED",
	ErrCodeBrandContractViolated: "INPUT_VALIDATION_FAILED",
	ErrCodeReportSchemaInvalid:   "REPORT_BUILD_FAILED",
}

// ==========================
// 3. Error Constructors
// ==========================

// NewProfileFetchFailedError marks a scraper fetch failure (retryable).
func NewProfileFetchFailedError(username string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileFetchFailed,
		Message:   "Creator profile fetch failed",
		Details:   fmt.Sprintf("username: %s, error: %s", username, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileNotFoundError marks a username unknown to every profile source.
func NewProfileNotFoundError(username string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileNotFound,
		Message:   "Creator profile not found",
		Details:   fmt.Sprintf("username: %s", username),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewScraperTimeoutError(username string) *StandardError {
	return &StandardError{
		Code:      ErrCodeScraperTimeout,
		Message:   "Scraper API timeout",
		Details:   fmt.Sprintf("username: %s", username),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewScraperAuthFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeScraperAuthFailed,
		Message:   "Scraper API authentication failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewInputValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputValidationFailed,
		Message:   "Creator input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBrandContractViolatedError marks a caller contract violation (brand
// missing both category and name, or an empty creator list).
func NewBrandContractViolatedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrandContractViolated,
		Message:   "Brand profile violates caller contract",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewCompatibilityScoreFailedError(username string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCompatibilityScoreFailed,
		Message:   "Compatibility scoring failed",
		Details:   fmt.Sprintf("username: %s, error: %s", username, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewEmptyCreatorListError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyCreatorList,
		Message:   "No creators available for ranking",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewReportBuildFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportBuildFailed,
		Message:   "Ranking report build failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewReportSchemaInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportSchemaInvalid,
		Message:   "Ranking report failed output schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewReportIndexFailedError(reportID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportIndexFailed,
		Message:   "Ranking report indexing failed",
		Details:   fmt.Sprintf("reportId: %s, error: %s", reportID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewIndexNotFoundError(indexName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIndexNotFound,
		Message:   "Elasticsearch index not found",
		Details:   fmt.Sprintf("indexName: %s", indexName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewQueryExecutionFailedError(query string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", query, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewQueryTimeoutError(query string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Database query timeout",
		Details:   fmt.Sprintf("query: %s", query),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Retry Policy
// ==========================

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeProfileFetchFailed,
		ErrCodeScraperAuthFailed,
		ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeReportIndexFailed,
		ErrCodeNotificationSendFailed:
		return 3 // Retryable technical errors

	case ErrCodeScraperTimeout,
		ErrCodeQueryTimeout:
		return 2 // Partial retry for timeouts

	case ErrCodeCacheUnavailable:
		return 1 // Cache misses degrade to source fetch anyway

	default:
		return 0 // Business errors: no retry
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "PROFILE") || strings.Contains(codeStr, "SCRAPER") || strings.Contains(codeStr, "CACHE"):
		return "PROFILE_SOURCE"
	case strings.Contains(codeStr, "SCORE") || strings.Contains(codeStr, "RANKING") || strings.Contains(codeStr, "CREATOR_LIST"):
		return "SCORING"
	case strings.Contains(codeStr, "REPORT") || strings.Contains(codeStr, "INDEX"):
		return "REPORTING"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "CONTRACT"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
