package player

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tsimard/playerdex/internal/model"
	"github.com/tsimard/playerdex/internal/pagination"
	"github.com/tsimard/playerdex/internal/schema"
	"github.com/tsimard/playerdex/internal/storage/memory"
)

type PlayerServiceSuite struct {
	suite.Suite

	ctx     context.Context
	store   *memory.Store
	service *Service
}

func (s *PlayerServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.New()
	s.service = New(s.store)
}

func TestPlayerServiceSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceSuite))
}

func (s *PlayerServiceSuite) input(username string, level int) schema.PlayerInput {
	return schema.PlayerInput{
		Username: username,
		Password: "secret",
		Email:    username + "@example.com",
		Level:    level,
		Platform: "pc",
	}
}

func (s *PlayerServiceSuite) seed(n int) {
	for i := 1; i <= n; i++ {
		err := s.service.Create(s.ctx, s.input(fmt.Sprintf("player%03d", i), i), "")
		s.Require().NoError(err)
	}
}

func (s *PlayerServiceSuite) TestCreateAndGet() {
	s.Require().NoError(s.service.Create(s.ctx, s.input("alice", 10), ""))

	p, err := s.service.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("alice", p.Username)
	s.Equal(10, p.Level)
	s.Empty(p.ProfilePic)

	_, err = s.service.Get(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *PlayerServiceSuite) TestListPage() {
	s.seed(25)

	q := schema.PageQuery{PerPage: 10, Page: 2, OrderBy: []string{"id"}}
	pr, players, err := s.service.ListPage(s.ctx, q)
	s.Require().NoError(err)

	s.Equal(10, pr.Offset)
	s.Equal(25, pr.PlayerTotal)
	s.Equal(3, pr.PageCount)
	s.Require().Len(players, 10)
	s.Equal("player011", players[0].Username)
	s.Equal("player020", players[9].Username)
}

func (s *PlayerServiceSuite) TestListPageLastPartialPage() {
	s.seed(25)

	q := schema.PageQuery{PerPage: 10, Page: 3, OrderBy: []string{"id"}}
	pr, players, err := s.service.ListPage(s.ctx, q)
	s.Require().NoError(err)
	s.Equal(20, pr.Offset)
	s.Len(players, 5)
}

func (s *PlayerServiceSuite) TestListPageOutOfRange() {
	s.seed(25)

	q := schema.PageQuery{PerPage: 10, Page: 4, OrderBy: []string{"id"}}
	_, _, err := s.service.ListPage(s.ctx, q)
	s.ErrorIs(err, pagination.ErrOutOfRange)
}

func (s *PlayerServiceSuite) TestListPageEmpty() {
	q := schema.PageQuery{PerPage: 50, Page: 1, OrderBy: []string{"id"}}
	pr, players, err := s.service.ListPage(s.ctx, q)
	s.Require().NoError(err)
	s.Equal(0, pr.PlayerTotal)
	s.Empty(players)
}

func (s *PlayerServiceSuite) TestListPageOrdering() {
	s.Require().NoError(s.service.Create(s.ctx, s.input("carol", 2), ""))
	s.Require().NoError(s.service.Create(s.ctx, s.input("alice", 9), ""))
	s.Require().NoError(s.service.Create(s.ctx, s.input("bob", 2), ""))

	q := schema.PageQuery{PerPage: 50, Page: 1, OrderBy: []string{"level", "username"}}
	_, players, err := s.service.ListPage(s.ctx, q)
	s.Require().NoError(err)
	s.Equal("bob", players[0].Username)
	s.Equal("carol", players[1].Username)
	s.Equal("alice", players[2].Username)
}

func (s *PlayerServiceSuite) TestReplace() {
	s.Require().NoError(s.service.Create(s.ctx, s.input("alice", 10), ""))

	s.Require().NoError(s.service.Replace(s.ctx, 1, s.input("alice", 42), nil))

	p, err := s.service.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(42, p.Level)

	err = s.service.Replace(s.ctx, 99, s.input("ghost", 1), nil)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *PlayerServiceSuite) TestReplaceKeepsStoredPicture() {
	pic := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	s.Require().NoError(s.service.Create(s.ctx, s.input("alice", 10), pic))

	// nil means "no picture in the payload": the stored one survives
	s.Require().NoError(s.service.Replace(s.ctx, 1, s.input("alice", 11), nil))
	p, err := s.service.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(pic, p.ProfilePic)

	// an explicit empty string clears it
	empty := ""
	s.Require().NoError(s.service.Replace(s.ctx, 1, s.input("alice", 12), &empty))
	p, err = s.service.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Empty(p.ProfilePic)
}

func (s *PlayerServiceSuite) TestDelete() {
	s.Require().NoError(s.service.Create(s.ctx, s.input("alice", 10), ""))

	s.Require().NoError(s.service.Delete(s.ctx, 1))
	s.ErrorIs(s.service.Delete(s.ctx, 1), model.ErrPlayerNotFound)
}

func (s *PlayerServiceSuite) TestProfileImage() {
	raw := []byte("jpeg-bytes")
	pic := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)
	s.Require().NoError(s.service.Create(s.ctx, s.input("alice", 10), pic))

	// jpg and jpeg both address a stored JPEG
	mime, data, err := s.service.ProfileImage(s.ctx, 1, "jpg")
	s.Require().NoError(err)
	s.Equal("image/jpeg", mime)
	s.Equal(raw, data)

	_, _, err = s.service.ProfileImage(s.ctx, 1, "jpeg")
	s.Require().NoError(err)

	_, _, err = s.service.ProfileImage(s.ctx, 1, "png")
	s.ErrorIs(err, ErrWrongImageFormat)
}

func (s *PlayerServiceSuite) TestProfileImageAbsent() {
	s.Require().NoError(s.service.Create(s.ctx, s.input("alice", 10), ""))

	_, _, err := s.service.ProfileImage(s.ctx, 1, "png")
	s.ErrorIs(err, model.ErrNoProfilePic)

	_, _, err = s.service.ProfileImage(s.ctx, 99, "png")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
