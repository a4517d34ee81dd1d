/*
Package errors provides structured error handling for the system.

It defines a standard AppError type that includes:
  - Error Code (standardized strings like INVALID_ARGUMENT, INTERNAL)
  - Message (human-readable description)
  - Underlying Error (chaining)

It also provides constructors for the error kinds callers are expected to
check for with CodeOf.
*/
package errors
