package rest

import "net/http"

// InfoHandler serves GET /public/info.
type InfoHandler struct {
	service string
	major   int
	minor   int
	rev     int
}

// NewInfoHandler creates an InfoHandler for the named service variant.
func NewInfoHandler(service string, major, minor, rev int) *InfoHandler {
	return &InfoHandler{service: service, major: major, minor: minor, rev: rev}
}

type infoResponse struct {
	Service      string `json:"service"`
	VersionMajor int    `json:"version_major"`
	VersionMinor int    `json:"version_minor"`
	VersionRev   int    `json:"version_rev"`
}

// Info handles GET /public/info.
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeOk(w, infoResponse{
		Service:      h.service,
		VersionMajor: h.major,
		VersionMinor: h.minor,
		VersionRev:   h.rev,
	})
}
