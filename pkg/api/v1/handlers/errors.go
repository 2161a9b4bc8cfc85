// Package handlers provides HTTP request handling
package handlers

// Common error messages
const (
	ErrMsgInvalidParams      = "Invalid parameters"
	ErrMsgInvalidReqFormat   = "Invalid request format"
	ErrMsgMethodRequired     = "Method is required"
	ErrMsgUnknownMethod      = "Unknown method"
	ErrMsgUnknownProjMethod  = "Unknown project method"
	ErrMsgUnknownBudgMethod  = "Unknown budget method"
	ErrMsgUnknownSchedMethod = "Unknown schedule method"
	ErrMsgUnknownAsstMethod  = "Unknown assistant method"
)

// Project error messages
const (
	ErrMsgProjNameRequired = "Project name is required"
	ErrMsgProjIDRequired   = "Project id is required"
	ErrMsgProjNotFound     = "Project not found"
	ErrMsgProjCreateFailed = "Failed to create project"
	ErrMsgProjListFailed   = "Failed to list projects"
	ErrMsgProjDeleteFailed = "Failed to delete project"
	ErrMsgProjGetFailed    = "Failed to get project"
)

// Budget error messages
const (
	ErrMsgBudgGenerateFailed = "Failed to generate budget"
	ErrMsgBudgGetFailed      = "Failed to get budget"
	ErrMsgBudgNotGenerated   = "Budget not generated"
	ErrMsgBudgItemIDRequired = "Budget item id is required"
	ErrMsgBudgItemNotFound   = "Budget item not found"
	ErrMsgBudgUpdateFailed   = "Failed to update budget"
)

// Schedule error messages
const (
	ErrMsgSchedGenerateFailed = "Failed to generate schedule"
	ErrMsgSchedGetFailed      = "Failed to get schedule"
	ErrMsgSchedNotGenerated   = "Schedule not generated"
	ErrMsgSchedTaskIDRequired = "Schedule task id is required"
	ErrMsgSchedTaskNotFound   = "Schedule task not found"
	ErrMsgSchedUpdateFailed   = "Failed to update schedule"
)

// Assistant error messages
const (
	ErrMsgAsstMessageRequired = "Message is required"
	ErrMsgAsstChatFailed      = "Failed to get assistant reply"
	ErrMsgAsstQuotaExceeded   = "Assistant quota exceeded"
)

// Auth and user error messages
const (
	ErrMsgNameRequired     = "Name is required"
	ErrMsgEmailRequired    = "Email is required"
	ErrMsgInvalidUserEmail = "Invalid user email format"
	ErrMsgPasswordRequired = "Password is required"
	ErrMsgPasswordTooShort = "Password must have at least 8 characters"
	ErrMsgEmailTaken       = "Email already registered"
	ErrMsgInvalidCreds     = "Invalid email or password"
	ErrMsgRegisterFailed   = "Failed to register user"
	ErrMsgGetUserFailed    = "Failed to get user"
	ErrMsgGetUsersFailed   = "Failed to get users"
	ErrMsgDeleteUserFailed = "Failed to delete user"
	ErrMsgInvalidUserID    = "Invalid user id"
	ErrMsgUserNotFoundByID = "User not found with provided id"
)

// Payment error messages
const (
	ErrMsgPaymentAmountInvalid = "Payment amount must be positive"
	ErrMsgPaymentFailed        = "Failed to process payment"
	ErrMsgPaymentNotFound      = "Payment not found"
	ErrMsgPaymentListFailed    = "Failed to list payments"
)

// Admin error messages
const (
	ErrMsgMetricsFailed     = "Failed to assemble metrics"
	ErrMsgUsageReportFailed = "Failed to assemble usage report"
	ErrMsgAlertsFailed      = "Failed to list alerts"
	ErrMsgAlertCreateFailed = "Failed to create alert"
	ErrMsgAlertAckFailed    = "Failed to acknowledge alert"
	ErrMsgAlertMsgRequired  = "Alert message is required"
	ErrMsgInvalidAlertID    = "Invalid alert id"
)

// Pagination error messages
const (
	ErrMsgNegativePagination = "Page must be a positive number from 1"
)
