// Package binding resolves handler inputs from an incoming request.
//
// Handlers declare what they expect as a table of Params (name, kind,
// required flag and default) and let this package look each one up:
//
//   - Resolve turns one Param into a typed Value (query + form parameters).
//   - BindFields populates a structure from a table of Fields.
//   - ReadBody / ReadBodyUTF8 read the raw body as text.
//   - BindJSON decodes the body into a structured target.
//
// All failures are *errs.HTTPError values wrapping errs.ErrMissingParameter,
// errs.ErrTypeMismatch or errs.ErrBodyRead.
package binding
