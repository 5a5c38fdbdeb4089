// Package player implements the roster operations behind the /players
// endpoints: the list pipeline (count, paginate, fetch), single-record
// reads, editor writes, and profile image extraction.
package player

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/tsimard/playerdex/internal/model"
	"github.com/tsimard/playerdex/internal/pagination"
	"github.com/tsimard/playerdex/internal/schema"
	"github.com/tsimard/playerdex/internal/storage"
)

// ErrWrongImageFormat means the requested extension does not match the MIME
// type embedded in the stored picture
var ErrWrongImageFormat = errors.New("requested format does not match the stored picture")

// Service handles player roster operations
type Service struct {
	store storage.Store
}

// New creates a new player service
func New(store storage.Store) *Service {
	return &Service{store: store}
}

// ListPage runs the listing pipeline for a validated page query: fetch the
// total, derive the page window, then fetch the ordered rows. The stages run
// strictly in sequence; a failing stage propagates immediately.
func (s *Service) ListPage(ctx context.Context, q schema.PageQuery) (pagination.PageResult, []model.Player, error) {
	total, err := s.store.CountPlayers(ctx)
	if err != nil {
		return pagination.PageResult{}, nil, err
	}

	pr, err := pagination.Paginate(q, total)
	if err != nil {
		return pagination.PageResult{}, nil, err
	}

	players, err := s.store.ListPlayers(ctx, q.PerPage, pr.Offset, q.OrderBy)
	if err != nil {
		return pagination.PageResult{}, nil, err
	}

	return pr, players, nil
}

// Get fetches a single player record
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.store.GetPlayer(ctx, id)
}

// Create inserts a new player record. profilePic is the data-URL string for
// an uploaded picture, or empty when none was provided.
func (s *Service) Create(ctx context.Context, in schema.PlayerInput, profilePic string) error {
	p := recordFromInput(in, profilePic)

	affected, err := s.store.InsertPlayer(ctx, p)
	if err != nil {
		return err
	}
	if affected != 1 {
		return fmt.Errorf("insert player affected %d rows", affected)
	}
	return nil
}

// Replace overwrites every field of an existing record. A nil profilePic
// keeps the stored picture; a non-nil one replaces it (possibly with
// nothing).
func (s *Service) Replace(ctx context.Context, id model.PlayerID, in schema.PlayerInput, profilePic *string) error {
	pic := ""
	if profilePic != nil {
		pic = *profilePic
	} else {
		existing, err := s.store.GetPlayer(ctx, id)
		if err != nil {
			return err
		}
		pic = existing.ProfilePic
	}

	affected, err := s.store.ReplacePlayer(ctx, id, recordFromInput(in, pic))
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrPlayerNotFound
	}
	if affected > 1 {
		return model.ErrRowMultiplicity
	}
	return nil
}

// Delete removes a player row
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	affected, err := s.store.DeletePlayer(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrPlayerNotFound
	}
	if affected > 1 {
		return model.ErrRowMultiplicity
	}
	return nil
}

// ProfileImage extracts the stored picture as raw bytes, cross-checking the
// requested extension against the embedded MIME type
func (s *Service) ProfileImage(ctx context.Context, id model.PlayerID, format string) (mime string, data []byte, err error) {
	p, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		return "", nil, err
	}

	if p.ProfilePic == "" {
		return "", nil, model.ErrNoProfilePic
	}

	mime = p.ProfilePicMIME()
	if !schema.FormatMatchesMIME(format, mime) {
		return "", nil, ErrWrongImageFormat
	}

	data, err = base64.StdEncoding.DecodeString(p.ProfilePicPayload())
	if err != nil {
		return "", nil, fmt.Errorf("decode stored picture: %w", err)
	}
	return mime, data, nil
}

// recordFromInput maps a normalized payload onto a storable record
func recordFromInput(in schema.PlayerInput, profilePic string) *model.Player {
	return &model.Player{
		Username:       in.Username,
		Password:       in.Password,
		Email:          in.Email,
		Level:          in.Level,
		Platform:       in.Platform,
		LastConnection: in.LastConnection,
		ProfilePic:     profilePic,
	}
}
