// All this does is contain in one place the constants controlling which bits of the inner workings of the
// lexer/parser/compiler/evaluator are displayed for debugging purposes. In a release they must all be set
// to false. What they show goes to the debug level of the logger, so it also needs --verbose.

package settings

const (
	// These do what it sounds like.
	SHOW_LEXER     = false
	SHOW_PARSER    = false
	SHOW_COMPILER  = false
	SHOW_EVALUATOR = false

	SHOW_TESTS = false // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
)
