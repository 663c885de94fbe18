package handler

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"

	"github.com/blogbuster/pkg/endpoint"
)

// respond writes page with an ETag taken from its encoded form, so any change
// to the page, sidebar included, yields a new tag.
func respond(w http.ResponseWriter, r *http.Request, page any) *endpoint.ApiError {
	body, err := json.Marshal(page)
	if err != nil {
		return endpoint.LogInternalError("could not encode the page", err)
	}

	hash := fnv.New64a()
	_, _ = hash.Write(body)

	resp := endpoint.NewResponseFrom(fmt.Sprintf("%x", hash.Sum64()), w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(page); err != nil {
		return endpoint.LogInternalError("could not write the page", err)
	}

	return nil
}

func respondNoCache(w http.ResponseWriter, r *http.Request, page any) *endpoint.ApiError {
	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(page); err != nil {
		return endpoint.LogInternalError("could not write the page", err)
	}

	return nil
}

func sharedContextError(err error) *endpoint.ApiError {
	return endpoint.LogInternalError("could not assemble the page context", err)
}
