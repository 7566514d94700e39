package handler

import (
	"net/http"

	v1 "confgen/api/v1"
	"confgen/pkg/log"
)

type Handler struct {
	logger *log.Logger
}

func NewHandler(logger *log.Logger) *Handler {
	return &Handler{logger: logger}
}

// httpStatus maps service errors onto status codes. Clients are expected to
// read the success flag in the envelope, not just the status.
func httpStatus(err error) int {
	switch err {
	case v1.ErrTemplateNotFound, v1.ErrVersionNotFound, v1.ErrActiveVersionMissing, v1.ErrNotFound:
		return http.StatusNotFound
	case v1.ErrTemplateNameEmpty, v1.ErrTemplateNameTaken, v1.ErrTemplateEmpty,
		v1.ErrUnknownHostType, v1.ErrUnknownPortType, v1.ErrUnknownSwitchOS,
		v1.ErrOnlyVersion, v1.ErrMetadataValueEmpty, v1.ErrMetadataValueTaken,
		v1.ErrRowsMissing, v1.ErrInvalidUpload, v1.ErrInvalidSnapshot, v1.ErrBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
