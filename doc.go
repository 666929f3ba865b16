/*
Package fasturi provides fast zero-copy URI parsing and building.

Fasturi provides the following features:

  - Parse splits a URI into scheme, authority, host, port, path and query
    string. All the parts are views into a single copy of the input,
    so parsing costs exactly one memory allocation.
  - Build assembles a URI from its parts in a single memory allocation.
    Parsing the built URI returns the same parts.
  - Query string params are split on demand without memory allocations,
    either into a caller-provided slice or via QueryParamScanner.
  - Percent-encoded octets are never decoded or re-encoded.
  - Invalid ports and scheme-looking prefixes without "//" are reported
    as ErrMalformedInput, never silently replaced with defaults.

Parsed and built URIs are immutable, so they may be shared between
goroutines without synchronization.
*/
package fasturi
