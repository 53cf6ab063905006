package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
)

// getImage streams a stored image. Names are generated by the server, so
// the content is cacheable forever.
func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	image, err := h.services.ChatService.OpenImage(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, "Handler.getImage", err)
		return
	}
	defer image.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	if _, err = io.Copy(w, image); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getImage").Str("image", name).Msg("failed to stream image")
	}
}
