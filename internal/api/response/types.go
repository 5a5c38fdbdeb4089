package response

import (
	"time"

	"github.com/tsimard/playerdex/internal/hypermedia"
	"github.com/tsimard/playerdex/internal/model"
	"github.com/tsimard/playerdex/internal/pagination"
	"github.com/tsimard/playerdex/internal/services/auth"
)

// PlayerListItem is one row of the paginated collection. List rows carry the
// sortable columns and a details link only; the full record stays behind the
// detail endpoint.
type PlayerListItem struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Level          int        `json:"level"`
	LastConnection *time.Time `json:"last_connection"`
	Details        string     `json:"details"`
}

// PlayerListItemFromModel converts a model.Player to a list row
func PlayerListItemFromModel(p model.Player, details string) PlayerListItem {
	return PlayerListItem{
		ID:             int64(p.ID),
		Username:       p.Username,
		Level:          p.Level,
		LastConnection: p.LastConnection,
		Details:        details,
	}
}

// PlayerList is the paginated collection response. The window and the
// navigation links are flattened into the top level alongside the echoed
// query parameters.
type PlayerList struct {
	PerPage int      `json:"per_page"`
	Page    int      `json:"page"`
	OrderBy []string `json:"order_by"`
	pagination.PageResult
	hypermedia.LinkSet
	Players []PlayerListItem `json:"players"`
}

// PlayerDetail is the full record for a single player. The stored picture is
// exposed as the URL of the image endpoint, never as inline data; the hashed
// password is never exposed.
type PlayerDetail struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Level          int        `json:"level"`
	Platform       string     `json:"platform"`
	LastConnection *time.Time `json:"last_connection"`
	ProfilePic     string     `json:"profile_pic,omitempty"`
	Details        string     `json:"details"`
}

// PlayerDetailFromModel converts a model.Player to a detail response.
// details is the fully-qualified URL of this record; the picture URL is
// derived from it and the stored image's media type.
func PlayerDetailFromModel(p *model.Player, details string) PlayerDetail {
	d := PlayerDetail{
		ID:             int64(p.ID),
		Username:       p.Username,
		Email:          p.Email,
		Level:          p.Level,
		Platform:       p.Platform,
		LastConnection: p.LastConnection,
		Details:        details,
	}

	switch p.ProfilePicMIME() {
	case "image/jpeg":
		d.ProfilePic = details + ".jpeg"
	case "image/png":
		d.ProfilePic = details + ".png"
	}

	return d
}

// Auth is the response for a successful login
type Auth struct {
	Token string       `json:"token"`
	User  model.Claims `json:"user"`
}

// AuthFromSession creates an Auth response from a session
func AuthFromSession(s *auth.Session) Auth {
	return Auth{
		Token: s.Token,
		User:  s.Claims,
	}
}

// Status is a bare confirmation body, shared by the health check and the
// account endpoints that have nothing else to say
type Status struct {
	Status string `json:"status"`
}
