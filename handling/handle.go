package handling

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.InternalServerError(w, gecho.Send()).Send()
}

// HandleBadRequest reports a client error with the given message, carrying
// the underlying error as response data.
func HandleBadRequest(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	logger.Warn("Rejected request", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.BadRequest(w, gecho.WithMessage(msg), gecho.WithData(err.Error()), gecho.Send()).Send()
}
