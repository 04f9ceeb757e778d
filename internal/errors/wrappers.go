package errors

// WrapIOError wraps file system related errors
func WrapIOError(operation, path string, cause error) *BaseError {
	return Wrapf(IOErrorCode, cause, "failed to %s '%s'", operation, path).
		WithContext("operation", operation).
		WithContext("path", path)
}

// IOError creates a file system error without an underlying cause
func IOError(operation, path, message string) *BaseError {
	return Newf(IOErrorCode, "failed to %s '%s': %s", operation, path, message).
		WithContext("operation", operation).
		WithContext("path", path)
}

// Canceled reports that the user declined an operation
func Canceled(message string) *BaseError {
	return New(CanceledErrorCode, message)
}
