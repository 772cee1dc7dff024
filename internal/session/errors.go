package session

// Code enumerates the error taxonomy returned to callers.
type Code string

const (
	NotHost         Code = "NOT_HOST"
	AlreadyActive   Code = "ALREADY_ACTIVE"
	NotActive       Code = "NOT_ACTIVE"
	NoQuestion      Code = "NO_QUESTION"
	UnknownPlayer   Code = "UNKNOWN_PLAYER"
	AlreadyAnswered Code = "ALREADY_ANSWERED"
	InProgress      Code = "IN_PROGRESS"
	NotDuelist      Code = "NOT_DUELIST"
	Eliminated      Code = "ELIMINATED"
	InvalidWager    Code = "INVALID_WAGER"
	NoWagerPhase    Code = "NO_WAGER_PHASE"
	Internal        Code = "INTERNAL"
)

// Error is the typed error every SessionEngine public operation fails
// with. It deliberately carries no stack trace or wrapped cause: these
// are protocol-level rejections, not bugs.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

// NewError builds an *Error, the only constructor engine code should use so
// every rejection carries a taxonomy code.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}
