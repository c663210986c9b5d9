// Package ocslink parses and validates ocs:// (Open Collaboration Services)
// URIs — the custom scheme content-sharing platforms use to hand a desktop
// client an install or download instruction, e.g.
//
//	ocs://install?url=https%3A%2F%2Ffake.download%2Flocation.png&type=plasma_look_and_feel&filename=location55.png
//
// A successful parse yields an immutable ParsedLink; every failure is a
// typed, code-carrying error. The package performs no I/O: fetching the
// payload and placing it on disk belong to the installer collaborator.
package ocslink

import (
	"net/url"
	"strings"

	"golang.org/x/xerrors"
)

// ParseLink takes a candidate ocs:// URI and validates it into a ParsedLink.
//
// The raw input is percent-decoded as a whole before structural parsing, so
// query values are expected to arrive encoded (url=https%3A%2F%2F...). OCS
// links should be lower-case as-is: scheme and command matching tolerates
// upper-case input, but query keys do not.
//
// The install type token is stored verbatim and is not cross-checked against
// the registry here; see ValidateInstallType.
func ParseLink(rawURI string) (*ParsedLink, error) {
	decoded, err := url.PathUnescape(rawURI)
	if err != nil {
		return nil, newDecodeError(rawURI, err)
	}

	ocsURL, err := url.Parse(decoded)
	if err != nil {
		return nil, newURISyntaxError(decoded, err)
	}
	if !ocsURL.IsAbs() {
		return nil, newURISyntaxError(decoded, xerrors.New("relative URL without base"))
	}

	scheme, err := parseScheme(ocsURL.Scheme)
	if err != nil {
		return nil, err
	}

	if ocsURL.Host == "" {
		if ocsURL.Opaque == "" {
			// authority form (`ocs://?...`) with nothing in the host slot
			return nil, newURISyntaxError(decoded, xerrors.New("empty host"))
		}
		// opaque form (`ocs:install?...`) carries no host component at all
		return nil, newMissingCommandError()
	}
	command, err := parseCommand(ocsURL.Host)
	if err != nil {
		return nil, err
	}

	parameters := queryPairs(ocsURL.RawQuery)

	rawDownloadURL, ok := parameters["url"]
	if !ok {
		return nil, newMissingDownloadURLError()
	}
	downloadURL, err := url.Parse(rawDownloadURL)
	if err != nil {
		return nil, newURISyntaxError(rawDownloadURL, err)
	}
	if !downloadURL.IsAbs() {
		return nil, newURISyntaxError(rawDownloadURL, xerrors.New("relative URL without base"))
	}

	installType, ok := parameters["type"]
	if !ok {
		return nil, newMissingInstallTypeError()
	}

	result := &ParsedLink{
		RawURI:      rawURI,
		Scheme:      scheme,
		Command:     command,
		DownloadURL: downloadURL,
		InstallType: installType,
	}
	if filename, ok := parameters["filename"]; ok {
		result.Filename = &filename
	}
	return result, nil
}

// queryPairs splits a raw query string into a key/value map. The last
// occurrence of a duplicate key wins. Values whose escape sequences fail to
// decode are kept verbatim rather than failing the whole parse.
func queryPairs(rawQuery string) map[string]string {
	pairs := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key := pair
		value := ""
		if i := strings.Index(pair, "="); i >= 0 {
			key = pair[:i]
			value = pair[i+1:]
		}
		pairs[unescapeLossy(key)] = unescapeLossy(value)
	}
	return pairs
}

func unescapeLossy(text string) string {
	if unescaped, err := url.QueryUnescape(text); err == nil {
		return unescaped
	}
	return text
}
