package errs

import "net/http"

// errorMap holds the user-facing message and HTTP status for every code.
// Messages mirror the wording shown in the browser.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:     {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrInvalidSignals:    {Code: ErrInvalidSignals, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrRateLimitExceeded: {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Chat Session and Interview Errors
	ErrChatNameInvalid:     {Code: ErrChatNameInvalid, Message: "Chat name already exists or is empty."},
	ErrChatNotFound:        {Code: ErrChatNotFound, Message: "Chat session not found."},
	ErrCandidateIncomplete: {Code: ErrCandidateIncomplete, Message: "Tech stack and role are required."},
	ErrInvalidEmail:        {Code: ErrInvalidEmail, Message: "Invalid Email ID!"},
	ErrInvalidPhone:        {Code: ErrInvalidPhone, Message: "Invalid Phone Number!"},

	// 3xxx: User, Session, and Security Errors
	ErrInvalidUsername:    {Code: ErrInvalidUsername, Message: "Username is required."},
	ErrInvalidPassword:    {Code: ErrInvalidPassword, Message: "Password is required."},
	ErrUserAlreadyExists:  {Code: ErrUserAlreadyExists, Message: "Username already exists!"},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Invalid credentials! Please Sign Up."},
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please log in to continue.", Status: http.StatusUnauthorized},

	// 5xxx: Internal System Errors
	ErrUnknown:          {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrStoreUnavailable: {Code: ErrStoreUnavailable, Message: "Stored data could not be read: %v", Status: http.StatusInternalServerError},
}
