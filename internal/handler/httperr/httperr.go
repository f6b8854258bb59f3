package httperr

import (
	"errors"
	"net/http"

	"amenity-booking/internal/infra"
	"amenity-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var kindStatus = map[errs.Kind]int{
	errs.KindNotFound:     http.StatusNotFound,
	errs.KindBadRequest:   http.StatusBadRequest,
	errs.KindConflict:     http.StatusConflict,
	errs.KindForbidden:    http.StatusForbidden,
	errs.KindInvalidState: http.StatusUnprocessableEntity,
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	if kind, ok := errs.KindOf(err); ok {
		resp.Error.Kind = kind.String()
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers with the status of err's kind and its caller-facing message.
// Errors without a kind become 500s with a generic message.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	if kind, ok := errs.KindOf(err); ok {
		if status, known := kindStatus[kind]; known {
			return status, errs.Message(err)
		}
	}
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) {
		switch repoErr.Kind {
		case infra.KindNotFound:
			return http.StatusNotFound, "Not found"
		case infra.KindExclusionViolated, infra.KindDuplicateKey:
			return http.StatusConflict, "Conflict"
		case infra.KindForeignKeyViolated:
			return http.StatusBadRequest, "Referenced record does not exist"
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
