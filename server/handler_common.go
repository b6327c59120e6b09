package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"post_bot/logic"
	"post_bot/shared"
	"strconv"
)

const (
	apiKeyHeader      = "X-API-KEY"
	metricsAuthHeader = "Authorization"
	rootPlacholder    = "*root*"
	internalErrorStr  = "500 Internal Server Error"
	badRequestStr     = "400 Invalid Request"
	notFoundStr       = "404 Not Found"
	badApiKeyStr      = "401 Missing or Invalid API Key"
	badAuthorization  = "401 Missing or Invalid Authorization"
)

const defaultHistoryLimit = 20
const maxHistoryLimit = 200

// Defines a single HTTP handler (endpoint)
type handlerDef struct {
	method  string
	pattern string
	handler func(http.ResponseWriter, *http.Request)
}

// IHandlerGroup groups together multiple HTTP handler definitions.
type IHandlerGroup interface {
	Prefix() string
	GroupDefs() []handlerDef
	AuthMW() func(next http.Handler) http.Handler
}

func emptyMW(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	})
}

// Rejects requests that do not carry one of the configured API keys.
func apiKeyMW(cfg *shared.Config, logger shared.ILogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var apiKey = r.Header.Get(apiKeyHeader)
			found := false
			for _, key := range cfg.Secrets.ApiKeys {
				if apiKey != "" && apiKey == key {
					found = true
				}
			}
			if !found {
				keyPart := apiKey
				if len(apiKey) > 4 {
					keyPart = apiKey[:4] + "..."
				}
				logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
				writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Returns the JSON serialized object as the response body; handles errors.
func writeJsonResponse(logger shared.ILogger, w http.ResponseWriter, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	var err error
	var respJson []byte
	if respJson, err = json.Marshal(resp); err != nil {
		logger.Warnf("Failed to serialize response: %v\n", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if _, err = fmt.Fprintln(w, string(respJson)); err != nil {
		logger.Warnf("Failed to write response: %v\n", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
}

type errorResp struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeErrorResponse(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	resp := errorResp{msg, code}
	respJson, _ := json.Marshal(resp)
	http.Error(w, string(respJson), code)
}

// Maps a domain or backend error to an HTTP status.
func statusForError(err error) int {
	var be *logic.BackendError
	switch {
	case errors.Is(err, logic.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, logic.ErrQuotaExhausted),
		errors.Is(err, logic.ErrScheduleQuotaFull):
		return http.StatusTooManyRequests
	case errors.Is(err, logic.ErrUnknownStyle),
		errors.Is(err, logic.ErrInvalidUrn),
		errors.Is(err, logic.ErrScheduleInPast):
		return http.StatusBadRequest
	case errors.Is(err, logic.ErrPostNotEditable),
		errors.Is(err, logic.ErrNotPublishable),
		errors.Is(err, logic.ErrPublishInFlight),
		errors.Is(err, logic.ErrNotScanned),
		errors.Is(err, logic.ErrNoActivitiesSelected),
		errors.Is(err, logic.ErrNoImageTarget),
		errors.Is(err, logic.ErrStaleResponse),
		errors.Is(err, logic.ErrPostChanged):
		return http.StatusConflict
	case errors.As(err, &be):
		if be.Kind == logic.ErrKindApplication {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeDomainError(logger shared.ILogger, w http.ResponseWriter, r *http.Request, err error) {
	code := statusForError(err)
	msg := logic.UserMessage(err)
	if code == http.StatusInternalServerError {
		logger.Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
		msg = internalErrorStr
	} else {
		logger.Infof("%s %s: %d %s", r.Method, r.URL.Path, code, msg)
	}
	writeErrorResponse(w, msg, code)
}

// Decodes a JSON request body into obj. An empty body leaves obj untouched.
// Writes a 400 and returns false if the body cannot be read or parsed.
func readJsonBody(logger shared.ILogger, w http.ResponseWriter, r *http.Request, obj any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warnf("Failed to read request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return false
	}
	if len(body) == 0 {
		return true
	}
	if err = json.Unmarshal(body, obj); err != nil {
		logger.Infof("Invalid JSON in %s %s: %v", r.Method, r.URL.Path, err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return false
	}
	return true
}

func historyLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return defaultHistoryLimit
	}
	return min(limit, maxHistoryLimit)
}
