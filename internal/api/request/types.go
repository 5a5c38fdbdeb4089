// Package request extracts and normalizes API request bodies. Player writes
// may arrive as JSON, an urlencoded form, or a multipart form carrying a
// profile picture; account payloads as JSON or an urlencoded form.
package request

import (
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/tsimard/playerdex/internal/api/apierr"
	"github.com/tsimard/playerdex/internal/schema"
)

// maxUploadBytes caps multipart form memory, profile picture included
const maxUploadBytes = 10 << 20

// PlayerBody extracts a player write payload from the request. The returned
// picture is a data URL string, or nil when the request carried no file part;
// callers decide whether nil means "keep existing" or "no picture".
func PlayerBody(r *http.Request) (schema.PlayerInput, *string, error) {
	switch mediaType(r) {
	case "application/json":
		in, err := schema.ParsePlayerJSON(r.Body)
		return in, nil, err

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return schema.PlayerInput{}, nil, apierr.NewInvalidRequestError("malformed form body")
		}
		in, err := schema.ParsePlayerForm(r.PostForm)
		return in, nil, err

	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return schema.PlayerInput{}, nil, apierr.NewInvalidRequestError("malformed multipart body")
		}
		in, err := schema.ParsePlayerForm(url.Values(r.MultipartForm.Value))
		if err != nil {
			return schema.PlayerInput{}, nil, err
		}
		pic, err := profilePicture(r)
		if err != nil {
			return schema.PlayerInput{}, nil, err
		}
		return in, pic, nil

	default:
		return schema.PlayerInput{}, nil, apierr.NewUnsupportedMediaError()
	}
}

// Credentials extracts an account payload from a JSON or urlencoded body
func Credentials(r *http.Request) (schema.Credentials, error) {
	switch mediaType(r) {
	case "application/json":
		return schema.ParseCredentials(r.Body)

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return schema.Credentials{}, apierr.NewInvalidRequestError("malformed form body")
		}
		c := schema.Credentials{
			Username: r.PostForm.Get("username"),
			Password: strings.TrimSpace(r.PostForm.Get("password")),
		}
		if err := c.Validate(); err != nil {
			return schema.Credentials{}, err
		}
		return c, nil

	default:
		return schema.Credentials{}, apierr.NewUnsupportedMediaError()
	}
}

// PasswordChange extracts a password-change payload
func PasswordChange(r *http.Request) (schema.PasswordChange, error) {
	switch mediaType(r) {
	case "application/json":
		return schema.ParsePasswordChange(r.Body)

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return schema.PasswordChange{}, apierr.NewInvalidRequestError("malformed form body")
		}
		p := schema.PasswordChange{
			Password: strings.TrimSpace(r.PostForm.Get("password")),
		}
		if err := p.Validate(); err != nil {
			return schema.PasswordChange{}, err
		}
		return p, nil

	default:
		return schema.PasswordChange{}, apierr.NewUnsupportedMediaError()
	}
}

// profilePicture reads the optional profile_pic file part into a data URL
func profilePicture(r *http.Request) (*string, error) {
	file, header, err := r.FormFile("profile_pic")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apierr.NewInvalidRequestError("malformed profile_pic part")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apierr.NewInvalidRequestError("unreadable profile_pic part")
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if mimeType != "image/jpeg" && mimeType != "image/png" {
		return nil, schema.NewFieldError("profile_pic", "must be a jpeg or png image")
	}

	pic := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return &pic, nil
}

// mediaType returns the request's media type without parameters
func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}
