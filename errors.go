package fasturi

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned by Parse when the input is not a valid URI.
//
// This is the only error kind returned by Parse, so it is safe to treat
// it as "the remote peer sent garbage".
var ErrMalformedInput = errors.New("malformed URI")

// ErrInvalidBuilderOptions is the parent of every precondition error
// returned by Build. It signals a programming error in the calling code
// rather than bad external data.
var ErrInvalidBuilderOptions = errors.New("invalid URI builder options")

var (
	// ErrQuerySource is returned by Build when both or neither of
	// BuilderOptions.QueryParams and BuilderOptions.QueryString are set.
	ErrQuerySource = fmt.Errorf("%w: exactly one of QueryParams and QueryString must be set", ErrInvalidBuilderOptions)

	// ErrInvalidPort is returned by Build when the port is outside [0..65535].
	ErrInvalidPort = fmt.Errorf("%w: port out of range", ErrInvalidBuilderOptions)

	// ErrPortWithoutHost is returned by Build when a port is set without a host.
	ErrPortWithoutHost = fmt.Errorf("%w: port requires a host", ErrInvalidBuilderOptions)

	// ErrInvalidScheme is returned by Build when the scheme contains
	// chars not allowed in a scheme.
	ErrInvalidScheme = fmt.Errorf("%w: invalid scheme", ErrInvalidBuilderOptions)

	// ErrInvalidHost is returned by Build when the host contains '/' or '?',
	// or when it ends with ":port" while Port is 0.
	ErrInvalidHost = fmt.Errorf("%w: invalid host", ErrInvalidBuilderOptions)

	// ErrInvalidPath is returned by Build when a non-empty path doesn't
	// start with '/' or contains '?'.
	ErrInvalidPath = fmt.Errorf("%w: invalid path", ErrInvalidBuilderOptions)
)

// ErrInsufficientCapacity is returned by SplitQueryParams when the
// destination slice cannot hold all the query params.
var ErrInsufficientCapacity = errors.New("insufficient capacity for query params")

func malformedErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrMalformedInput}, args...)...) //errtrace:skip
}
