package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Calculation error codes (CALC_*)
const (
	CalcInvalidInput   ErrorCode = "CALC_001"
	CalcNegativeAmount ErrorCode = "CALC_002"
	CalcZeroTerm       ErrorCode = "CALC_003"
	CalcRateOutOfRange ErrorCode = "CALC_004"
)

// Product error codes (PRODUCT_*)
const (
	ProductUnknown       ErrorCode = "PRODUCT_001"
	ProductNotAmortizing ErrorCode = "PRODUCT_002"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidPageSize  ErrorCode = "REPORT_001"
	ReportInvalidStartDate ErrorCode = "REPORT_002"
	ReportGenerationFailed ErrorCode = "REPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Calculation errors
	CalcInvalidInput:   "Calculation input is invalid",
	CalcNegativeAmount: "Monetary amounts must not be negative",
	CalcZeroTerm:       "Financing term must be at least one month",
	CalcRateOutOfRange: "Profit rate is out of the allowed range",

	// Product errors
	ProductUnknown:       "Unknown product type",
	ProductNotAmortizing: "Amortization reports are only available for murabaha and ijara financing",

	// Report errors
	ReportInvalidPageSize:  "Report page size must be at least 1",
	ReportInvalidStartDate: "Report start date is missing or invalid",
	ReportGenerationFailed: "Report generation failed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
