/*
Package errors provides semantic error types for the dbbench toolkit.

The package defines common failure scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound         = errors.New("record not found")
	    ErrConnectionFailed = errors.New("connection failed")
	    ErrThrottled        = errors.New("request throttled")
	    ErrUnsupported      = errors.New("operation not supported")
	    ErrInvalidConfig    = errors.New("invalid configuration")
	)

Usage:

	// Check error type
	rec, err := tgt.FindOne(ctx, "37077")
	if err != nil {
	    if errors.IsThrottled(err) {
	        // Back off and retry
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewConnectionError("mongodb", cause)
	err := errors.NewConfigError("targets", "at least one target required")
	err := errors.NewUnsupportedError("dynamodb", "server-side update by filter")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
