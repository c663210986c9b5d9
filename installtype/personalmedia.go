package installtype

import "strings"

// PersonalMedia enumerates install targets under the user's own media
// directories
type PersonalMedia int

const (
	Bin PersonalMedia = iota
	Books
	Comics
	Documents
	Downloads
	Music
	Pictures
	Videos
	Wallpapers
)

// ParsePersonalMedia resolves a token to a PersonalMedia variant. Unlike
// the other families, matching is case-insensitive.
func ParsePersonalMedia(token string) (PersonalMedia, error) {
	switch strings.ToLower(token) {
	case "bin":
		return Bin, nil
	case "books":
		return Books, nil
	case "comics":
		return Comics, nil
	case "documents":
		return Documents, nil
	case "downloads":
		return Downloads, nil
	case "music":
		return Music, nil
	case "pictures":
		return Pictures, nil
	case "videos":
		return Videos, nil
	case "wallpapers":
		return Wallpapers, nil
	}
	return 0, newNoMatchingInstallTypeError(token)
}

// InstallPath returns the fixed install-path template. $APP_DATA denotes
// the application's own data directory, e.g. $XDG_DATA_HOME/amizade.
func (m PersonalMedia) InstallPath() string {
	switch m {
	case Bin:
		return "$HOME/.local/bin"
	case Books:
		return "$APP_DATA/books"
	case Comics:
		return "$APP_DATA/comics"
	case Documents:
		return "$HOME/Documents"
	case Downloads:
		return "$HOME/Downloads"
	case Music:
		return "$HOME/Music"
	case Pictures:
		return "$HOME/Pictures"
	case Videos:
		return "$HOME/Videos"
	case Wallpapers:
		return "$XDG_DATA_HOME/wallpapers"
	}
	return ""
}

// String returns the canonical token for the variant
func (m PersonalMedia) String() string {
	switch m {
	case Bin:
		return "bin"
	case Books:
		return "books"
	case Comics:
		return "comics"
	case Documents:
		return "documents"
	case Downloads:
		return "downloads"
	case Music:
		return "music"
	case Pictures:
		return "pictures"
	case Videos:
		return "videos"
	case Wallpapers:
		return "wallpapers"
	}
	return ""
}

func (PersonalMedia) installType() {}
