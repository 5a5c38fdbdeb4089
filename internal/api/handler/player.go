package handler

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tsimard/playerdex/internal/api/middleware"
	"github.com/tsimard/playerdex/internal/api/request"
	"github.com/tsimard/playerdex/internal/api/response"
	"github.com/tsimard/playerdex/internal/hypermedia"
	"github.com/tsimard/playerdex/internal/model"
	"github.com/tsimard/playerdex/internal/pdf"
	"github.com/tsimard/playerdex/internal/schema"
	"github.com/tsimard/playerdex/internal/services/player"
)

const playersPath = "/players"

// PlayerHandler handles the player collection and record endpoints
type PlayerHandler struct {
	players *player.Service
	version string
}

// NewPlayerHandler creates a new player handler. version is the API version
// segment embedded in generated links.
func NewPlayerHandler(players *player.Service, version string) *PlayerHandler {
	return &PlayerHandler{
		players: players,
		version: version,
	}
}

// List handles GET /v2/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := schema.ParsePageQuery(r.URL.Query())
	if err != nil {
		WriteError(w, err)
		return
	}

	pr, players, err := h.players.ListPage(r.Context(), q)
	if err != nil {
		WriteError(w, err)
		return
	}

	scheme := middleware.GetScheme(r.Context())
	items := make([]response.PlayerListItem, len(players))
	for i, p := range players {
		details := hypermedia.ResourceURL(scheme, r.Host, h.version, playersPath, int64(p.ID))
		items[i] = response.PlayerListItemFromModel(p, details)
	}

	response.JSON(w, http.StatusOK, response.PlayerList{
		PerPage:    q.PerPage,
		Page:       q.Page,
		OrderBy:    q.OrderBy,
		PageResult: pr,
		LinkSet:    hypermedia.BuildLinks(scheme, r.Host, h.version, playersPath, q, pr),
		Players:    items,
	})
}

// ListPDF handles GET /v2/players.pdf
func (h *PlayerHandler) ListPDF(w http.ResponseWriter, r *http.Request) {
	q, err := schema.ParsePageQuery(r.URL.Query())
	if err != nil {
		WriteError(w, err)
		return
	}

	_, players, err := h.players.ListPage(r.Context(), q)
	if err != nil {
		WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := pdf.Render(&buf, players); err != nil {
		WriteError(w, err)
		return
	}

	response.Attachment(w, "players.pdf")
	response.Binary(w, http.StatusOK, "application/pdf", buf.Bytes())
}

// Get handles GET /v2/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := schema.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.players.Get(r.Context(), model.PlayerID(id))
	if err != nil {
		WriteError(w, err)
		return
	}

	scheme := middleware.GetScheme(r.Context())
	details := hypermedia.ResourceURL(scheme, r.Host, h.version, playersPath, id)
	response.JSON(w, http.StatusOK, response.PlayerDetailFromModel(p, details))
}

// Create handles POST /v2/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, pic, err := request.PlayerBody(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	profilePic := ""
	if pic != nil {
		profilePic = *pic
	}

	if err := h.players.Create(r.Context(), in, profilePic); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Replace handles POST /v2/players/{id}. A request without a picture part
// keeps the stored picture.
func (h *PlayerHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := schema.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, err)
		return
	}

	in, pic, err := request.PlayerBody(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.players.Replace(r.Context(), model.PlayerID(id), in, pic); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Delete handles DELETE /v2/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := schema.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.players.Delete(r.Context(), model.PlayerID(id)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Image handles GET /v2/players/{id}.{format}. A bad extension is a missing
// resource, not a malformed request: the URL simply names an image that does
// not exist.
func (h *PlayerHandler) Image(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := schema.ParseID(vars["id"])
	if err != nil {
		WriteError(w, err)
		return
	}

	format, err := schema.ParseImageFormat(vars["format"])
	if err != nil {
		WriteError(w, player.ErrWrongImageFormat)
		return
	}

	mime, data, err := h.players.ProfileImage(r.Context(), model.PlayerID(id), format)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Binary(w, http.StatusOK, mime, data)
}
