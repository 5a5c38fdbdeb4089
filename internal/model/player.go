package model

import (
	"strings"
	"time"
)

// PlayerID is the surrogate key for a player row
type PlayerID int64

// Player represents a tracked game player
type Player struct {
	ID             PlayerID   `db:"id"`
	Username       string     `db:"username"`
	Password       string     `db:"password"` // never exposed on list endpoints
	Email          string     `db:"email"`
	Level          int        `db:"level"`
	Platform       string     `db:"platform"`
	LastConnection *time.Time `db:"last_connection"`
	ProfilePic     string     `db:"profile_pic"` // data-URL string, empty when unset
}

// ProfilePicMIME returns the MIME type embedded in the profile picture
// data URL ("data:<mime>;base64,<payload>"), or "" when there is no picture
// or the string is not a well-formed data URL.
func (p *Player) ProfilePicMIME() string {
	header, _, ok := strings.Cut(p.ProfilePic, ",")
	if !ok {
		return ""
	}
	mime := strings.TrimPrefix(header, "data:")
	if mime == header {
		return ""
	}
	mime, _, _ = strings.Cut(mime, ";")
	return mime
}

// ProfilePicPayload returns the base64 payload of the profile picture data
// URL, or "" when there is no picture.
func (p *Player) ProfilePicPayload() string {
	_, payload, ok := strings.Cut(p.ProfilePic, ",")
	if !ok {
		return ""
	}
	return payload
}
