package ocslink

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrorCode uniquely identifies a particular parse failure class
type ErrorCode string

const (
	DecodeErrorCode              ErrorCode = "OCSLINK-0100"
	URISyntaxErrorCode           ErrorCode = "OCSLINK-0101"
	MissingSchemeErrorCode       ErrorCode = "OCSLINK-0200"
	UnrecognizedSchemeErrorCode  ErrorCode = "OCSLINK-0201"
	MissingCommandErrorCode      ErrorCode = "OCSLINK-0300"
	UnrecognizedCommandErrorCode ErrorCode = "OCSLINK-0301"
	MissingDownloadURLErrorCode  ErrorCode = "OCSLINK-0400"
	MissingInstallTypeErrorCode  ErrorCode = "OCSLINK-0500"
	UnknownInstallTypeErrorCode  ErrorCode = "OCSLINK-0501"
)

// MissingSchemeErrorCode is reserved for callers that distinguish "no scheme
// at all" from "wrong scheme". The parser itself never emits it: input with
// no scheme token never parses as an absolute URI, so it surfaces as a
// URISyntaxError with a "relative URL without base" cause instead.

// DecodeError is used when percent-decoding of the raw input fails on a
// malformed escape sequence
type DecodeError struct {
	Input string
	Cause error
	frame xerrors.Frame
}

func newDecodeError(input string, cause error) DecodeError {
	return DecodeError{Input: input, Cause: cause, frame: xerrors.Caller(1)}
}

// ErrorCode uniquely identifies this failure class
func (e DecodeError) ErrorCode() ErrorCode {
	return DecodeErrorCode
}

// FormatError will print a simple message to the Printer object. This will be what you see when you Println or use %s/%v in a formatted print statement.
func (e DecodeError) FormatError(p xerrors.Printer) error {
	p.Printf("%s unable to percent-decode %q: %v", DecodeErrorCode, e.Input, e.Cause)
	e.frame.Format(p)
	return nil
}

// Format provide backwards compatibility with pre-xerrors package
func (e DecodeError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// Error satisfies the Go error contract
func (e DecodeError) Error() string {
	return fmt.Sprint(e)
}

// Unwrap exposes the underlying decoding diagnostic
func (e DecodeError) Unwrap() error {
	return e.Cause
}

// URISyntaxError is used when the decoded text is not a structurally valid
// absolute URI. It wraps the underlying URI-library diagnostic.
type URISyntaxError struct {
	Input string
	Cause error
	frame xerrors.Frame
}

func newURISyntaxError(input string, cause error) URISyntaxError {
	return URISyntaxError{Input: input, Cause: cause, frame: xerrors.Caller(1)}
}

// ErrorCode uniquely identifies this failure class
func (e URISyntaxError) ErrorCode() ErrorCode {
	return URISyntaxErrorCode
}

// FormatError will print a simple message to the Printer object. This will be what you see when you Println or use %s/%v in a formatted print statement.
func (e URISyntaxError) FormatError(p xerrors.Printer) error {
	p.Printf("%s %q is not a valid absolute URI: %v", URISyntaxErrorCode, e.Input, e.Cause)
	e.frame.Format(p)
	return nil
}

// Format provide backwards compatibility with pre-xerrors package
func (e URISyntaxError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// Error satisfies the Go error contract
func (e URISyntaxError) Error() string {
	return fmt.Sprint(e)
}

// Unwrap exposes the underlying URI diagnostic
func (e URISyntaxError) Unwrap() error {
	return e.Cause
}

// UnrecognizedSchemeError is used when a scheme token is present but is
// neither ocs nor ocss. The full offending token is preserved.
type UnrecognizedSchemeError struct {
	Scheme string
	frame  xerrors.Frame
}

func newUnrecognizedSchemeError(scheme string) UnrecognizedSchemeError {
	return UnrecognizedSchemeError{Scheme: scheme, frame: xerrors.Caller(1)}
}

// ErrorCode uniquely identifies this failure class
func (e UnrecognizedSchemeError) ErrorCode() ErrorCode {
	return UnrecognizedSchemeErrorCode
}

// FormatError will print a simple message to the Printer object. This will be what you see when you Println or use %s/%v in a formatted print statement.
func (e UnrecognizedSchemeError) FormatError(p xerrors.Printer) error {
	p.Printf("%s an unexpected OCS scheme was provided: %q. Instead, please use `ocs://...`", UnrecognizedSchemeErrorCode, e.Scheme)
	e.frame.Format(p)
	return nil
}

// Format provide backwards compatibility with pre-xerrors package
func (e UnrecognizedSchemeError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// Error satisfies the Go error contract
func (e UnrecognizedSchemeError) Error() string {
	return fmt.Sprint(e)
}

// MissingCommandError is used when the URI carries no host component to act
// as the OCS command
type MissingCommandError struct {
	frame xerrors.Frame
}

func newMissingCommandError() MissingCommandError {
	return MissingCommandError{frame: xerrors.Caller(1)}
}

// ErrorCode uniquely identifies this failure class
func (e MissingCommandError) ErrorCode() ErrorCode {
	return MissingCommandErrorCode
}

// FormatError will print a simple message to the Printer object. This will be what you see when you Println or use %s/%v in a formatted print statement.
func (e MissingCommandError) FormatError(p xerrors.Printer) error {
	p.Printf("%s no OCS command was provided. Try a link like: `ocs://install...`", MissingCommandErrorCode)
	e.frame.Format(p)
	return nil
}

// Format provide backwards compatibility with pre-xerrors package
func (e MissingCommandError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// Error satisfies the Go error contract
func (e MissingCommandError) Error() string {
	return fmt.Sprint(e)
}

// UnrecognizedCommandError is used when a host is present but is neither
// download nor install. The full offending token is preserved.
type UnrecognizedCommandError struct {
	Command string
	frame   xerrors.Frame
}

func newUnrecognizedCommandError(command string) UnrecognizedCommandError {
	return UnrecognizedCommandError{Command: command, frame: xerrors.Caller(1)}
}

// ErrorCode uniquely identifies this failure class
func (e UnrecognizedCommandError) ErrorCode() ErrorCode {
	return UnrecognizedCommandErrorCode
}

// FormatError will print a simple message to the Printer object. This will be what you see when you Println or use %s/%v in a formatted print statement.
func (e UnrecognizedCommandError) FormatError(p xerrors.Printer) error {
	p.Printf("%s an unexpected OCS command was provided: %q. Instead, please ask for either an `install` or a `download`.", UnrecognizedCommandErrorCode, e.Command)
	e.frame.Format(p)
	return nil
}

// Format provide backwards compatibility with pre-xerrors package
func (e UnrecognizedCommandError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// Error satisfies the Go error contract
func (e UnrecognizedCommandError) Error() string {
	return fmt.Sprint(e)
}

// MissingDownloadURLError is used when the link has no url query parameter
type MissingDownloadURLError struct {
	frame xerrors.Frame
}

func newMissingDownloadURLError() MissingDownloadURLError {
	return MissingDownloadURLError{frame: xerrors.Caller(1)}
}

// ErrorCode uniquely identifies this failure class
func (e MissingDownloadURLError) ErrorCode() ErrorCode {
	return MissingDownloadURLErrorCode
}

// FormatError will print a simple message to the Printer object. This will be what you see when you Println or use %s/%v in a formatted print statement.
func (e MissingDownloadURLError) FormatError(p xerrors.Printer) error {
	p.Printf("%s an OCS link without a download URL was erroneously provided to the parser", MissingDownloadURLErrorCode)
	e.frame.Format(p)
	return nil
}

// Format provide backwards compatibility with pre-xerrors package
func (e MissingDownloadURLError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// Error satisfies the Go error contract
func (e MissingDownloadURLError) Error() string {
	return fmt.Sprint(e)
}

// MissingInstallTypeError is used when the link has no type query parameter
type MissingInstallTypeError struct {
	frame xerrors.Frame
}

func newMissingInstallTypeError() MissingInstallTypeError {
	return MissingInstallTypeError{frame: xerrors.Caller(1)}
}

// ErrorCode uniquely identifies this failure class
func (e MissingInstallTypeError) ErrorCode() ErrorCode {
	return MissingInstallTypeErrorCode
}

// FormatError will print a simple message to the Printer object. This will be what you see when you Println or use %s/%v in a formatted print statement.
func (e MissingInstallTypeError) FormatError(p xerrors.Printer) error {
	p.Printf("%s no install type was given", MissingInstallTypeErrorCode)
	e.frame.Format(p)
	return nil
}

// Format provide backwards compatibility with pre-xerrors package
func (e MissingInstallTypeError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// Error satisfies the Go error contract
func (e MissingInstallTypeError) Error() string {
	return fmt.Sprint(e)
}

// UnknownInstallTypeError is used by the optional post-parse cross-check
// when the install type token is not recognized by the registry. ParseLink
// itself never produces it.
type UnknownInstallTypeError struct {
	InstallType string
	Cause       error
	frame       xerrors.Frame
}

func newUnknownInstallTypeError(installType string, cause error) UnknownInstallTypeError {
	return UnknownInstallTypeError{InstallType: installType, Cause: cause, frame: xerrors.Caller(1)}
}

// ErrorCode uniquely identifies this failure class
func (e UnknownInstallTypeError) ErrorCode() ErrorCode {
	return UnknownInstallTypeErrorCode
}

// FormatError will print a simple message to the Printer object. This will be what you see when you Println or use %s/%v in a formatted print statement.
func (e UnknownInstallTypeError) FormatError(p xerrors.Printer) error {
	p.Printf("%s an unknown install type was given: %q", UnknownInstallTypeErrorCode, e.InstallType)
	e.frame.Format(p)
	return nil
}

// Format provide backwards compatibility with pre-xerrors package
func (e UnknownInstallTypeError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// Error satisfies the Go error contract
func (e UnknownInstallTypeError) Error() string {
	return fmt.Sprint(e)
}

// Unwrap exposes the registry's resolution failure
func (e UnknownInstallTypeError) Unwrap() error {
	return e.Cause
}
