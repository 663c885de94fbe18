package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

const DefaultMaxAge = 300

type Response struct {
	etag         string
	cacheControl string
	writer       http.ResponseWriter
	request      *http.Request
}

// NewResponseWithCache builds a cacheable page response. The ETag is derived
// from salt, which callers compose from the identity and update time of the
// entities the page renders.
func NewResponseWithCache(salt string, maxAgeSeconds int, writer http.ResponseWriter, request *http.Request) *Response {
	if maxAgeSeconds < 0 {
		maxAgeSeconds = 0
	}

	etag := ""
	if salt = strings.TrimSpace(salt); salt != "" {
		etag = fmt.Sprintf(`"%s"`, salt)
	}

	return &Response{
		writer:       writer,
		request:      request,
		etag:         etag,
		cacheControl: fmt.Sprintf("public, max-age=%d", maxAgeSeconds),
	}
}

func NewResponseFrom(salt string, writer http.ResponseWriter, request *http.Request) *Response {
	return NewResponseWithCache(salt, DefaultMaxAge, writer, request)
}

func NewNoCacheResponse(writer http.ResponseWriter, request *http.Request) *Response {
	return &Response{
		writer:       writer,
		request:      request,
		cacheControl: "no-store",
	}
}

func (r *Response) WithHeaders(callback func(w http.ResponseWriter)) {
	callback(r.writer)
}

func (r *Response) writeHeaders() {
	h := r.writer.Header()

	h.Set("Content-Type", "application/json")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Cache-Control", r.cacheControl)

	if r.etag != "" {
		h.Set("ETag", r.etag)
	}
}

func (r *Response) RespondOk(payload any) error {
	r.writeHeaders()
	r.writer.WriteHeader(http.StatusOK)

	return json.NewEncoder(r.writer).Encode(payload)
}

func (r *Response) HasCache() bool {
	if r.etag == "" {
		return false
	}

	match := strings.TrimSpace(r.request.Header.Get("If-None-Match"))

	return match == r.etag
}

func (r *Response) RespondWithNotModified() {
	r.writeHeaders()
	r.writer.WriteHeader(http.StatusNotModified)
}

func InternalError(msg string) *ApiError {
	message := fmt.Sprintf("Internal server error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     errors.New(message),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(msg, "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	message := fmt.Sprintf("Bad request error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     errors.New(message),
	}
}

func LogUnauthorisedError(msg string, err error) *ApiError {
	slog.Error(msg, "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Unauthorised request: %s", msg),
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func NotFound(msg string) *ApiError {
	message := fmt.Sprintf("Not found error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusNotFound,
		Err:     errors.New(message),
	}
}

func TooManyRequests(msg string) *ApiError {
	message := fmt.Sprintf("Too many requests: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusTooManyRequests,
		Err:     errors.New(message),
	}
}
