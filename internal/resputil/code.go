package resputil

type ErrorCode int

const (
	OK ErrorCode = 0

	// General
	InvalidRequest ErrorCode = 40001

	// Token
	TokenExpired ErrorCode = 40101
	TokenInvalid ErrorCode = 40102

	// Login
	InvalidCredentials ErrorCode = 40106

	// User is not allowed to access the resource
	UserNotAllowed ErrorCode = 40301

	// Resource does not exist
	NotFound ErrorCode = 40401

	// Marketplace lifecycle conflicts
	InvalidState             ErrorCode = 40901
	DuplicatePending         ErrorCode = 40902
	CannotApplyToOwnProject  ErrorCode = 40903
	NotAcceptingApplications ErrorCode = 40904
	NeedAlreadyFilled        ErrorCode = 40905
	InconsistentType         ErrorCode = 40906

	// The marketplace tables are absent: a deployment/migration gap, not a
	// user error. The message carries remediation guidance.
	SchemaNotInitialized ErrorCode = 50301

	// Indicates laziness of the developer
	// Frontend will directly print the message without any translation
	NotSpecified ErrorCode = 99999
)
