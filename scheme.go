package ocslink

import "strings"

// Scheme is the closed set of URI schemes the parser recognizes. ocs:// is
// the original protocol; ocss:// represents its "secure" variant.
type Scheme string

const (
	SchemeInsecure Scheme = "ocs"
	SchemeSecure   Scheme = "ocss"
)

// Command is the closed set of actions an OCS link can request. It travels
// as the URI's host component.
type Command string

const (
	CommandDownload Command = "download"
	CommandInstall  Command = "install"
)

// parseScheme matches text against the closed scheme set. Matching is
// case-insensitive on input; the canonical form is always lower-case.
func parseScheme(text string) (Scheme, error) {
	switch strings.ToLower(text) {
	case string(SchemeInsecure):
		return SchemeInsecure, nil
	case string(SchemeSecure):
		return SchemeSecure, nil
	}
	return "", newUnrecognizedSchemeError(strings.ToLower(text))
}

// parseCommand matches a host token against the closed command set, with
// the same case rules as parseScheme
func parseCommand(text string) (Command, error) {
	switch strings.ToLower(text) {
	case string(CommandDownload):
		return CommandDownload, nil
	case string(CommandInstall):
		return CommandInstall, nil
	}
	return "", newUnrecognizedCommandError(strings.ToLower(text))
}
