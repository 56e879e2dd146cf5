/*
Package errors implements the error classes shared by all vault
modules.

The idea is to reuse as many errors from this package as possible and
define custom package errors only when absolutely necessary. A module
that needs its own error class registers it with Register(code,
description) using a code range that no other module claims.

Every error created through this package carries a stacktrace. Please
ensure you create errors using ErrXyz.New("...") or errors.Wrap(err,
"...") at the point of creation to ensure we attach a stacktrace. If
you wrap multiple times, we only record the first wrap with the
stacktrace.

Once you have an error, you can use fmt.Printf/Sprintf to get more
context for the error:

	%s is just the error message
	%+v is the full stack trace
*/
package errors
