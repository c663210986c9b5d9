package ocslink

import "strings"

// String renders the link back into its canonical four-field form:
//
//	{scheme}://{command}?url={encoded-url}&type={type}[&filename={filename}]
//
// The download URL is percent-encoded; the filename is emitted raw. The
// filename segment appears whenever the parameter was supplied, even when
// its value is empty. For any link the parser accepts, re-parsing the
// rendered form yields a structurally equal result.
func (l ParsedLink) String() string {
	var b strings.Builder
	b.WriteString(string(l.Scheme))
	b.WriteString("://")
	b.WriteString(string(l.Command))
	b.WriteString("?url=")
	b.WriteString(percentEncode(l.DownloadURL.String()))
	b.WriteString("&type=")
	b.WriteString(l.InstallType)
	if l.Filename != nil {
		b.WriteString("&filename=")
		b.WriteString(*l.Filename)
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// percentEncode escapes every byte outside the RFC 3986 unreserved set,
// matching how OCS links arrive on the wire (a space becomes %20, not +)
func percentEncode(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' ||
			c == '-' || c == '_' || c == '.' || c == '~' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}
