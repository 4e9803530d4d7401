// Package errors provides structured error handling for the services core.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Command errors
	CodeDuplicateCommand Code = "COMMAND_DUPLICATE"
	CodeNoSuchCommand    Code = "COMMAND_NOT_FOUND"
	CodeNeedMoreParams   Code = "COMMAND_NEED_MORE_PARAMS"
	CodeNoPrivileges     Code = "COMMAND_NO_PRIVILEGES"

	// Login errors
	CodeNoSuchAccount        Code = "LOGIN_NO_SUCH_ACCOUNT"
	CodeLoginDenied          Code = "LOGIN_DENIED_BY_POLICY"
	CodeAccountFrozen        Code = "LOGIN_ACCOUNT_FROZEN"
	CodePasswordAuthDisabled Code = "LOGIN_PASSWORD_AUTH_DISABLED"
	CodeNoChange             Code = "LOGIN_NO_CHANGE"
	CodeAlreadyLoggedIn      Code = "LOGIN_ALREADY_LOGGED_IN"
	CodeBadPassword          Code = "LOGIN_BAD_PASSWORD"
	CodeTooManySessions      Code = "LOGIN_TOO_MANY_SESSIONS"
	CodeNotLoggedIn          Code = "LOGOUT_NOT_LOGGED_IN"

	// Protocol errors
	CodeUnknownOperation Code = "PROTOCOL_UNKNOWN_OPERATION"

	// Help errors
	CodeHelpUnreadable Code = "HELP_SOURCE_UNREADABLE"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// Fault is the protocol-facing failure class reported to users.
type Fault int

const (
	FaultNeedMoreParams Fault = iota + 1
	FaultBadParams
	FaultNoSuchTarget
	FaultAuthFail
	FaultNoPrivs
	FaultNoChange
	FaultAlreadyExists
	FaultTooMany
	FaultInternalError
)

// Fault maps domain codes to the failure class used in user replies.
func (c Code) Fault() Fault {
	switch c {
	case CodeNeedMoreParams:
		return FaultNeedMoreParams
	case CodeNoSuchCommand, CodeNoSuchAccount, CodeNotFound, CodeHelpUnreadable:
		return FaultNoSuchTarget
	case CodeLoginDenied, CodeAccountFrozen, CodePasswordAuthDisabled, CodeBadPassword:
		return FaultAuthFail
	case CodeNoPrivileges:
		return FaultNoPrivs
	case CodeNoChange, CodeNotLoggedIn:
		return FaultNoChange
	case CodeAlreadyLoggedIn, CodeDuplicateCommand:
		return FaultAlreadyExists
	case CodeTooManySessions:
		return FaultTooMany
	case CodeUnknownOperation:
		return FaultBadParams
	default:
		return FaultInternalError
	}
}
