/*
Package errs provides the application error type and its business error codes.

Codes identify a failure both in logs and in the notices rendered to the browser.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrInvalidSignals indicates that the action payload (Datastar signals) could not be decoded.
	ErrInvalidSignals = 1003

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: Chat Session and Interview Errors
const (
	// ErrChatNameInvalid indicates an empty chat name or one the user already owns.
	ErrChatNameInvalid = 2101

	// ErrChatNotFound indicates that the referenced chat session does not exist.
	ErrChatNotFound = 2102

	// ErrCandidateIncomplete indicates that tech stack or position is missing at generation time.
	ErrCandidateIncomplete = 2201

	// ErrInvalidEmail indicates a malformed candidate email.
	ErrInvalidEmail = 2202

	// ErrInvalidPhone indicates a candidate phone that is not exactly ten digits.
	ErrInvalidPhone = 2203
)

// 3xxx: User, Session, and Security Errors
const (
	// ErrInvalidUsername indicates an empty or malformed username.
	ErrInvalidUsername = 3001

	// ErrInvalidPassword indicates an empty password.
	ErrInvalidPassword = 3002

	// ErrUserAlreadyExists indicates signup with a username that is already registered.
	ErrUserAlreadyExists = 3003

	// ErrInvalidCredentials indicates a failed login.
	ErrInvalidCredentials = 3004

	// ErrUnauthorized indicates an action that requires a logged-in user.
	ErrUnauthorized = 3005
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrStoreUnavailable indicates the persistence layer could not be read or written.
	ErrStoreUnavailable = 5001
)
