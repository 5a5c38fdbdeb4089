package schema

import (
	"encoding/json"
	"io"
	"strings"
)

// Credentials is a normalized account payload, shared by login and register
type Credentials struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Password string `json:"password" validate:"required,min=3,max=50"`
}

// Validate checks already-normalized credentials
func (c Credentials) Validate() error {
	return checkStruct(c)
}

// PasswordChange is a normalized password-change payload
type PasswordChange struct {
	Password string `json:"password" validate:"required,min=3,max=50"`
}

// Validate checks an already-normalized password change
func (p PasswordChange) Validate() error {
	return checkStruct(p)
}

// ParseCredentials decodes and normalizes an account payload. The password
// is trimmed before its length constraints apply.
func ParseCredentials(body io.Reader) (Credentials, error) {
	var c Credentials
	if err := json.NewDecoder(body).Decode(&c); err != nil {
		return Credentials{}, NewFieldError("", "must be a valid JSON document")
	}

	c.Password = strings.TrimSpace(c.Password)

	if err := c.Validate(); err != nil {
		return Credentials{}, err
	}
	return c, nil
}

// ParsePasswordChange decodes and normalizes a password-change payload
func ParsePasswordChange(body io.Reader) (PasswordChange, error) {
	var p PasswordChange
	if err := json.NewDecoder(body).Decode(&p); err != nil {
		return PasswordChange{}, NewFieldError("", "must be a valid JSON document")
	}

	p.Password = strings.TrimSpace(p.Password)

	if err := p.Validate(); err != nil {
		return PasswordChange{}, err
	}
	return p, nil
}
