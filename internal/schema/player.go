package schema

import (
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"time"
)

// DefaultLevel is substituted when a player payload omits the level field
const DefaultLevel = 1

// PlayerInput is a normalized player write payload
type PlayerInput struct {
	Username       string     `json:"username" validate:"required,alphanum,min=3,max=50"`
	Password       string     `json:"password" validate:"required,min=3,max=150"`
	Email          string     `json:"email" validate:"required,email"`
	Level          int        `json:"level" validate:"min=1,max=100"`
	Platform       string     `json:"platform" validate:"omitempty,alphanum"`
	LastConnection *time.Time `json:"last_connection"`
}

// Validate checks an already-normalized PlayerInput
func (p PlayerInput) Validate() error {
	return checkStruct(p)
}

// playerPayload is the raw JSON shape before coercion. Level and
// last_connection stay raw so that non-integer levels and explicit nulls can
// be told apart from absent fields.
type playerPayload struct {
	Username       string          `json:"username"`
	Password       string          `json:"password"`
	Email          string          `json:"email"`
	Level          json.RawMessage `json:"level"`
	Platform       string          `json:"platform"`
	LastConnection json.RawMessage `json:"last_connection"`
}

// ParsePlayerJSON decodes and normalizes a JSON player payload
func ParsePlayerJSON(body io.Reader) (PlayerInput, error) {
	var raw playerPayload
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return PlayerInput{}, NewFieldError("", "must be a valid JSON document")
	}

	p := PlayerInput{
		Username: raw.Username,
		Password: raw.Password,
		Email:    raw.Email,
		Platform: raw.Platform,
		Level:    DefaultLevel,
	}

	if raw.Level != nil {
		n, err := coerceInt("level", unquote(string(raw.Level)))
		if err != nil {
			return PlayerInput{}, err
		}
		p.Level = n
	}

	if raw.LastConnection != nil {
		// An explicit null is invalid input, not "unset": absence alone
		// represents an unset date.
		if string(raw.LastConnection) == "null" {
			return PlayerInput{}, NewFieldError("last_connection", "must be a valid date")
		}
		t, err := coerceDate("last_connection", unquote(string(raw.LastConnection)))
		if err != nil {
			return PlayerInput{}, err
		}
		p.LastConnection = t
	}

	if err := p.Validate(); err != nil {
		return PlayerInput{}, err
	}
	return p, nil
}

// ParsePlayerForm normalizes a player payload arriving as form values
// (urlencoded or the value parts of a multipart form)
func ParsePlayerForm(form url.Values) (PlayerInput, error) {
	p := PlayerInput{
		Username: form.Get("username"),
		Password: form.Get("password"),
		Email:    form.Get("email"),
		Platform: form.Get("platform"),
		Level:    DefaultLevel,
	}

	if raw := form.Get("level"); raw != "" {
		n, err := coerceInt("level", raw)
		if err != nil {
			return PlayerInput{}, err
		}
		p.Level = n
	}

	t, err := coerceDate("last_connection", form.Get("last_connection"))
	if err != nil {
		return PlayerInput{}, err
	}
	p.LastConnection = t

	if err := p.Validate(); err != nil {
		return PlayerInput{}, err
	}
	return p, nil
}

// unquote strips the quotes from a JSON string literal so numeric and date
// coercion can accept both `12` and `"12"`
func unquote(raw string) string {
	if s, err := strconv.Unquote(raw); err == nil {
		return s
	}
	return raw
}
