// Package fault provides lightweight constant error values, mirroring the
// way the rest of this codebase avoids allocating sentinel errors.
package fault

// Const is the type for constant error values declared at package scope.
type Const string

// Error implements error for Const, returning the string value of the const.
func (e Const) Error() string { return string(e) }

// From converts any value to an error safely. A nil value converts to a nil
// error; a non-nil, non-error value converts to InvalidErrorType.
func From(value interface{}) error {
	switch err := value.(type) {
	case nil:
		return nil
	case error:
		return err
	default:
		return InvalidErrorType
	}
}

// InvalidErrorType is returned by From when the value given is not an error.
const InvalidErrorType = Const("invalid type for error")
