package errors

// Error codes returned in the "error" field of every failure body.
// Format: CATEGORY_SPECIFIC_DETAIL

const (
	// ==================== VALIDATION_ ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"
	ValidationRequired      = "VALIDATION_REQUIRED"
	ValidationConfirmation  = "VALIDATION_CONFIRMATION_REQUIRED" // destructive action sent without confirm

	// ==================== RESOURCE_ ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND"
	ResourceConflict = "RESOURCE_CONFLICT"

	// ==================== VERIFICATION_ ====================
	VerificationNotStarted     = "VERIFICATION_NOT_STARTED"     // no question set for the customer
	VerificationQuestionsFixed = "VERIFICATION_QUESTIONS_FIXED" // link already generated
	VerificationTokenInvalid   = "VERIFICATION_TOKEN_INVALID"
	VerificationAnswerMismatch = "VERIFICATION_ANSWER_MISMATCH"

	// ==================== QUOTATION_ ====================
	QuotationUnknownCustomer = "QUOTATION_UNKNOWN_CUSTOMER"
	QuotationInvalidAddOn    = "QUOTATION_INVALID_ADDON"

	// ==================== UPLOAD_ ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadNotConfigured   = "UPLOAD_NOT_CONFIGURED"

	// ==================== FEATURE_ ====================
	FeatureDisabled = "FEATURE_DISABLED" // optional integration turned off in config

	// ==================== INTERNAL_ ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
	InternalExternalAPI = "INTERNAL_EXTERNAL_API"
)
