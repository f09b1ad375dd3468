package err

import (
	"strconv"

	"github.com/tim-hardcastle/curly/source/text"
	"github.com/tim-hardcastle/curly/source/token"
)

// The 'error' type.
type Error struct {
	ErrorId string
	Message string
	Args    []any
	Token   *token.Token
}

func (e *Error) Error() string {
	if e.Token == nil {
		return e.Message
	}
	return e.Message + text.DescribePos(e.Token)
}

type Errors []*Error

type ErrorCreator struct {
	Message     func(tok *token.Token, args ...any) string
	Explanation func(errors Errors, pos int, tok *token.Token, args ...any) string
}

// Appends a new error to the list and returns the list, in the manner of 'append'.
func Throw(errorID string, errors Errors, tok *token.Token, args ...any) Errors {
	return append(errors, CreateErr(errorID, tok, args...))
}

func CreateErr(errorID string, tok *token.Token, args ...any) *Error {
	errorCreator, ok := ErrorCreatorMap[errorID]
	if !ok {
		return &Error{ErrorId: "err/misdirect", Message: "oops, " + text.Emph(errorID) +
			" doesn't correspond to any error", Token: tok}
	}
	return &Error{ErrorId: errorID, Message: errorCreator.Message(tok, args...), Args: args, Token: tok}
}

// Returns the explanation of the error at the given position in the list.
func (errors Errors) Explain(pos int) string {
	if pos < 0 || pos >= len(errors) {
		return "there is no error number " + strconv.Itoa(pos)
	}
	e := errors[pos]
	errorCreator, ok := ErrorCreatorMap[e.ErrorId]
	if !ok || errorCreator.Explanation == nil {
		return "there is no further explanation of that error"
	}
	return errorCreator.Explanation(errors, pos, e.Token, e.Args...)
}

func (errors Errors) String() string {
	return GetList(errors)
}

// The IDs of the errors, in order. Mostly useful for testing.
func (errors Errors) Ids() []string {
	result := make([]string, 0, len(errors))
	for _, e := range errors {
		result = append(result, e.ErrorId)
	}
	return result
}

func GetList(errors Errors) string {
	result := ""
	for i, e := range errors {
		result = result + "[" + strconv.Itoa(i) + "] " + text.ErrorLabel() + e.Error() + "\n"
	}
	return result
}
