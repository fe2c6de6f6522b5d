package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/invoicing/model"
)

const headerName = "X-Idempotency-Key"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

// Middleware replays the cached response for a repeated idempotency key,
// rejects concurrent use of the same key, and flags reuse of a key with a
// different request body as a conflict.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key := req.Data().Headers.Get(headerName)
	if key == "" {
		return middleware.Response{Err: &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}}
	}

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}
	bodyHash := hashPayload(req.Data().Payload)

	entry, err := Keyspace.Get(req.Context(), cacheKey)
	switch {
	case errors.Is(err, cache.Miss):
		return runAndCache(req, next, cacheKey, bodyHash)
	case err != nil:
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
	}

	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{Err: &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "idempotency key conflict: request body does not match previous request",
		}}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("concurrent idempotent request rejected", "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}}
	case statusCompleted:
		if resp, ok := replayResponse(req, entry); ok {
			rlog.Info("returning cached idempotent response", "key", key)
			return resp
		}
	}

	// Unknown status or corrupted cached response: run it again.
	return next(req)
}

// runAndCache executes the request while holding a processing marker, then
// records the outcome. A failed request clears the marker so the caller can
// retry with the same key.
func runAndCache(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	now := time.Now()
	if err := Keyspace.Set(req.Context(), cacheKey, model.IdempotencyCacheEntry{
		Status:    statusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}}
	}

	response := next(req)

	if response.Err != nil {
		clearEntry(req.Context(), cacheKey)
		return response
	}

	entry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       time.Now(),
	}
	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
		} else {
			entry.Response = payloadBytes
		}
	}
	if err := Keyspace.Set(req.Context(), cacheKey, entry); err != nil {
		rlog.Error("failed to cache idempotent response", "error", err)
	}

	return response
}

// replayResponse rebuilds the typed response payload from the cached JSON.
func replayResponse(req middleware.Request, entry model.IdempotencyCacheEntry) (middleware.Response, bool) {
	if len(entry.Response) == 0 {
		return middleware.Response{}, false
	}

	responseType := req.Data().API.ResponseType
	if responseType == nil {
		return middleware.Response{}, false
	}

	payload := reflect.New(responseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, payload); err != nil {
		rlog.Error("failed to unmarshal cached response", "error", err)
		return middleware.Response{}, false
	}
	return middleware.Response{Payload: payload}, true
}

func clearEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := Keyspace.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear idempotency entry", "error", err)
	}
}

// hashPayload produces a stable digest of the request body for conflict
// detection. Empty payloads hash to the empty string and never conflict.
func hashPayload(payload any) string {
	if payload == nil {
		return ""
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	sum := sha256.Sum256(bodyBytes)
	return hex.EncodeToString(sum[:])
}
