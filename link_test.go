package ocslink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/amizade/ocslink/installtype"
)

// goodLink should download from https://fake.download/location.png
const goodLink = "ocs://install?url=https%3A%2F%2Ffake.download%2Flocation.png&type=plasma_look_and_feel&filename=location55.png"

// linkPart names the section of a fixture link a test wants to vary
type linkPart int

const (
	schemePart linkPart = iota
	commandPart
	downloadURLPart
	installTypePart
	filenamePart
)

type LinkSuite struct {
	suite.Suite
}

// newLink builds the known-good link with one chosen part replaced
func (suite *LinkSuite) newLink(chosen linkPart, difference string) string {
	scheme := "ocs"
	command := "install"
	download := "https%3A%2F%2Ffake.download%2Flocation.png"
	installType := "plasma_look_and_feel"
	filename := "location55.png"

	switch chosen {
	case schemePart:
		scheme = difference
	case commandPart:
		command = difference
	case downloadURLPart:
		download = percentEncode(difference)
	case installTypePart:
		installType = difference
	case filenamePart:
		filename = percentEncode(difference)
	}

	return scheme + "://" + command + "?url=" + download + "&type=" + installType + "&filename=" + filename
}

func (suite *LinkSuite) TestParseGoodLink() {
	link, err := ParseLink(goodLink)
	suite.Nil(err, "A nice working link should parse")
	suite.Equal(goodLink, link.OriginalURL(), "The raw URI should be retained unaltered")
	suite.Equal(SchemeInsecure, link.Scheme, "Scheme should be the insecure ocs variant")
	suite.Equal(CommandInstall, link.Command, "Command should be install")
	suite.Equal("https://fake.download/location.png", link.DownloadURL.String(), "Download URL should be decoded")
	suite.Equal("plasma_look_and_feel", link.InstallType, "Install type should be stored verbatim")
	suite.True(link.HasFilename(), "Filename was supplied")
	suite.Equal("location55.png", *link.Filename, "Filename should be stored verbatim")

	finalURL, finalURLErr := link.FinalURL()
	suite.Nil(finalURLErr, "FinalURL should not fail on a valid link")
	suite.Equal("https://fake.download/location.png", finalURL.String(), "FinalURL should be the download destination")
}

func (suite *LinkSuite) TestRoundTrip() {
	link, err := ParseLink(goodLink)
	suite.Nil(err, "A nice working link should parse")
	suite.Equal(goodLink, link.String(), "Rendering should reproduce the identical string")

	reparsed, err := ParseLink(link.String())
	suite.Nil(err, "The rendered form should parse again")
	suite.Equal(link.Scheme, reparsed.Scheme, "Scheme should survive the round-trip")
	suite.Equal(link.Command, reparsed.Command, "Command should survive the round-trip")
	suite.Equal(link.DownloadURL.String(), reparsed.DownloadURL.String(), "Download URL should survive the round-trip")
	suite.Equal(link.InstallType, reparsed.InstallType, "Install type should survive the round-trip")
	suite.Equal(*link.Filename, *reparsed.Filename, "Filename should survive the round-trip")
}

func (suite *LinkSuite) TestParseBadLink() {
	// Evil, scary link. Must be an error if they're like this.
	_, err := ParseLink("sduigh:sdiguhcc8////s::;dij")
	suite.NotNil(err, "A mangled link should not parse")
}

func (suite *LinkSuite) TestMalformedEscape() {
	_, err := ParseLink("ocs://install?url=https%ZZ&type=music")
	var decodeErr DecodeError
	suite.True(xerrors.As(err, &decodeErr), "A malformed percent-escape should fail decoding")
	suite.Equal("ocs://install?url=https%ZZ&type=music", decodeErr.Input, "The offending input should be preserved")
}

func (suite *LinkSuite) TestParseEmptyLink() {
	_, err := ParseLink("")
	suite.NotNil(err, "The empty string should not parse")

	var syntaxErr URISyntaxError
	suite.True(xerrors.As(err, &syntaxErr), "Empty input is a structural URI error")
}

func (suite *LinkSuite) TestSchemeValidation() {
	_, err := ParseLink(suite.newLink(schemePart, "abc"))
	var schemeErr UnrecognizedSchemeError
	suite.True(xerrors.As(err, &schemeErr), "`abc` is not a valid scheme")
	suite.Equal("abc", schemeErr.Scheme, "The offending scheme should be preserved")

	// No scheme delimiter at all: a structural error, not a scheme error
	_, err = ParseLink("download?url=https%3A%2F%2Fnormal.link%2Fwith_thing.mp3&type=music")
	var syntaxErr URISyntaxError
	suite.True(xerrors.As(err, &syntaxErr), "Input without :// is a relative URL without base")
	suite.False(xerrors.As(err, &schemeErr), "The scheme-specific error is reserved for a present-but-wrong token")

	_, err = ParseLink(suite.newLink(schemePart, ""))
	suite.NotNil(err, "An empty scheme token should not parse")
}

func (suite *LinkSuite) TestSchemeCaseInsensitive() {
	link, err := ParseLink("OCS://INSTALL?url=https%3A%2F%2Ffake.download%2Flocation.png&type=music")
	suite.Nil(err, "Upper-case scheme and command are tolerated")
	suite.Equal(SchemeInsecure, link.Scheme, "Canonical scheme is lower-case")
	suite.Equal(CommandInstall, link.Command, "Canonical command is lower-case")
	suite.True(strings.HasPrefix(link.String(), "ocs://install?"), "Canonical output is always lower-case")

	// Query keys stay case-sensitive, so an all-caps link fails
	_, err = ParseLink("OCS://INSTALL?URL=https%3A%2F%2Ffake.download%2Fa.mp3&TYPE=music")
	var missingURLErr MissingDownloadURLError
	suite.True(xerrors.As(err, &missingURLErr), "Upper-case query keys should not be recognized")
}

func (suite *LinkSuite) TestSecureScheme() {
	link, err := ParseLink("ocss://download?url=https%3A%2F%2Ffake.download%2Flocation.png&type=music")
	suite.Nil(err, "The secure variant should parse")
	suite.Equal(SchemeSecure, link.Scheme, "ocss maps to the secure scheme")
	suite.Equal(CommandDownload, link.Command, "download command should be recognized")
}

func (suite *LinkSuite) TestCommandValidation() {
	_, err := ParseLink(suite.newLink(commandPart, "abc"))
	var commandErr UnrecognizedCommandError
	suite.True(xerrors.As(err, &commandErr), "`abc` is not a valid command")
	suite.Equal("abc", commandErr.Command, "The offending command should be preserved")

	_, err = ParseLink(suite.newLink(commandPart, ""))
	var syntaxErr URISyntaxError
	suite.True(xerrors.As(err, &syntaxErr), "An empty host is a structural error")

	_, err = ParseLink("ocs:install?url=https%3A%2F%2Ffake.download%2Flocation.png&type=music")
	var missingCmdErr MissingCommandError
	suite.True(xerrors.As(err, &missingCmdErr), "An opaque URI carries no command at all")
}

func (suite *LinkSuite) TestRequiredFields() {
	_, err := ParseLink("ocs://install?type=music")
	var missingURLErr MissingDownloadURLError
	suite.True(xerrors.As(err, &missingURLErr), "Omitting url should be its own error")

	_, err = ParseLink(suite.newLink(downloadURLPart, ""))
	var syntaxErr URISyntaxError
	suite.True(xerrors.As(err, &syntaxErr), "An empty url value is a URI syntax error")

	_, err = ParseLink(suite.newLink(downloadURLPart, "abc"))
	suite.True(xerrors.As(err, &syntaxErr), "A relative url value is a URI syntax error")

	_, err = ParseLink("ocs://install?url=https%3A%2F%2Ffake.download%2Flocation.png")
	var missingTypeErr MissingInstallTypeError
	suite.True(xerrors.As(err, &missingTypeErr), "Omitting type should be its own error")
}

func (suite *LinkSuite) TestOptionalFilename() {
	link, err := ParseLink("ocs://install?url=https%3A%2F%2Ffake.download%2Flocation.png&type=music")
	suite.Nil(err, "A link without a filename should parse")
	suite.False(link.HasFilename(), "No filename was supplied")
	suite.False(strings.Contains(link.String(), "&filename="), "Rendering should omit the filename segment")

	emptyFilename := suite.newLink(filenamePart, "")
	link, err = ParseLink(emptyFilename)
	suite.Nil(err, "An empty filename is accepted, not rejected")
	suite.True(link.HasFilename(), "The filename key was supplied")
	suite.Equal("", *link.Filename, "The empty value should be preserved")
	suite.Equal(emptyFilename, link.String(), "The empty filename segment should round-trip")
}

func (suite *LinkSuite) TestDuplicateKeyLastWins() {
	link, err := ParseLink("ocs://install?url=https%3A%2F%2Ffake.download%2Flocation.png&type=music&type=themes")
	suite.Nil(err, "Duplicate keys should not fail the parse")
	suite.Equal("themes", link.InstallType, "The last occurrence of a duplicate key wins")
}

func (suite *LinkSuite) TestUnknownInstallTypeStillParses() {
	link, err := ParseLink(suite.newLink(installTypePart, "farts"))
	suite.Nil(err, "Registry validation is not part of the parse path")
	suite.Equal("farts", link.InstallType, "The unrecognized token should be stored verbatim")
}

func (suite *LinkSuite) TestLongParts() {
	long := strings.Repeat("abcd", 400)

	_, err := ParseLink(suite.newLink(schemePart, long))
	var schemeErr UnrecognizedSchemeError
	suite.True(xerrors.As(err, &schemeErr), "A 1600-character scheme should be rejected, not crash")
	suite.Equal(long, schemeErr.Scheme, "The full offending scheme should be preserved")

	_, err = ParseLink(suite.newLink(commandPart, long))
	var commandErr UnrecognizedCommandError
	suite.True(xerrors.As(err, &commandErr), "A 1600-character command should be rejected, not crash")
	suite.Equal(long, commandErr.Command, "The full offending command should be preserved")

	_, err = ParseLink(suite.newLink(downloadURLPart, "https://"+long))
	suite.Nil(err, "A long but valid download URL should parse")

	_, err = ParseLink(suite.newLink(filenamePart, long))
	suite.Nil(err, "A long filename should parse")
}

func (suite *LinkSuite) TestCrazyParts() {
	crazy := "#(*H(F*(DH*HS(*D))));"

	// The main goal is to fail cleanly, never panic
	_, err := ParseLink(suite.newLink(schemePart, crazy))
	suite.NotNil(err, "Garbage in the scheme slot should not parse")

	_, err = ParseLink(suite.newLink(commandPart, crazy))
	suite.NotNil(err, "Garbage in the command slot should not parse")

	_, err = ParseLink(suite.newLink(downloadURLPart, crazy))
	suite.NotNil(err, "Garbage in the url slot should not parse")

	_, err = ParseLink(suite.newLink(filenamePart, crazy))
	suite.Nil(err, "Garbage in the filename slot is accepted verbatim")

	_, err = ParseLink("#(*H(F*(DH*HS(*D))));ocs://\"://download?url=https%3A%2F%2Fnormal.link%2Fwith_thing.mp3&type=music")
	suite.NotNil(err, "A link drowning in garbage should still fail cleanly")
}

func (suite *LinkSuite) TestValidateInstallType() {
	link, err := ParseLink(goodLink)
	suite.Nil(err, "A nice working link should parse")

	resolved, err := link.ValidateInstallType()
	suite.Nil(err, "plasma_look_and_feel is a known install type")
	suite.Equal(installtype.PlasmaLookAndFeel, resolved, "The token should resolve through the registry")

	link, err = ParseLink(suite.newLink(installTypePart, "farts"))
	suite.Nil(err, "The unrecognized token should still parse")

	_, err = link.ValidateInstallType()
	var unknownErr UnknownInstallTypeError
	suite.True(xerrors.As(err, &unknownErr), "The cross-check should reject the token")
	suite.Equal("farts", unknownErr.InstallType, "The offending token should be preserved")

	var registryErr installtype.NoMatchingInstallTypeError
	suite.True(xerrors.As(err, &registryErr), "The registry failure should stay reachable through Unwrap")
}

func (suite *LinkSuite) TestStructuralEquality() {
	first, err := ParseLink(goodLink)
	suite.Nil(err, "A nice working link should parse")
	second, err := ParseLink(goodLink)
	suite.Nil(err, "The same link should parse again")
	suite.True(first.Equal(second), "Two parses of the same input should be structurally equal")

	different, err := ParseLink(suite.newLink(installTypePart, "music"))
	suite.Nil(err, "The variant link should parse")
	suite.False(first.Equal(different), "Links with different install types should differ")
	suite.False(first.Equal(nil), "A link never equals nil")
}

func (suite *LinkSuite) TestKeys() {
	keys := MakeDefaultKeys()

	link, err := ParseLink(goodLink)
	suite.Nil(err, "A nice working link should parse")
	suite.Equal(keys.LinkKeyForURIText(goodLink), keys.LinkKey(link), "Canonical input should key identically to its parse")
	suite.Len(keys.LinkKey(link), 40, "Keys are SHA-1 hex digests")
	suite.Equal("link_is_nil_in_LinkKey", keys.LinkKey(nil), "A nil link should key to the sentinel")
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(LinkSuite))
}
