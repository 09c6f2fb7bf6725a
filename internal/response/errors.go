package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrDuplicateEmail     ErrCode = "DUPLICATE_EMAIL"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden     ErrCode = "FORBIDDEN"
	ErrWrongRole     ErrCode = "WRONG_ROLE"
	ErrStudentOnly   ErrCode = "STUDENT_ACCESS_ONLY"
	ErrTeacherOnly   ErrCode = "TEACHER_ACCESS_ONLY"
	ErrAdminOnly     ErrCode = "ADMIN_ACCESS_ONLY"
	ErrNotQuizAuthor ErrCode = "NOT_QUIZ_AUTHOR"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Attempt-specific ──────────────────────────────────────────────
	ErrNoQuizSelected    ErrCode = "NO_QUIZ_SELECTED"
	ErrAttemptNotFound   ErrCode = "ATTEMPT_NOT_FOUND"
	ErrAttemptFinished   ErrCode = "ATTEMPT_ALREADY_SUBMITTED"
	ErrAttemptInProgress ErrCode = "ATTEMPT_IN_PROGRESS"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid email or password."
	case ErrDuplicateEmail:
		return "An account with this email already exists."
	case ErrTokenRequired:
		return "Authentication token required."
	case ErrTokenInvalid:
		return "Authentication token is invalid."
	case ErrSessionInvalidated:
		return "Your session has ended. Please log in again."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrWrongRole:
		return "This page is not available for your role."
	case ErrStudentOnly:
		return "This resource is restricted to students."
	case ErrTeacherOnly:
		return "This resource is restricted to teachers."
	case ErrAdminOnly:
		return "This resource is restricted to administrators."
	case ErrNotQuizAuthor:
		return "You are not the author of this quiz."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."

	// ─── Attempt-specific ──────────────────────────────────────────────
	case ErrNoQuizSelected:
		return "No quiz was selected for this attempt."
	case ErrAttemptNotFound:
		return "No active quiz attempt found."
	case ErrAttemptFinished:
		return "This quiz attempt has already been submitted."
	case ErrAttemptInProgress:
		return "Another quiz attempt is already in progress."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Something went wrong. Please try again."
	default:
		return "An unexpected error occurred."
	}
}
