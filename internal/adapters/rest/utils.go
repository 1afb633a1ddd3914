package rest

import (
	"encoding/json"
	"net/http"

	"darna-client-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithFailure переводит классифицированный сбой в HTTP-ответ фасада.
// Скрытый политикой сбой отдается как 204: для вызывающего UI он
// неотличим от успеха без новых данных.
func RespondWithFailure(w http.ResponseWriter, failure *domain.Failure) {
	if !failure.UserVisible() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	status := http.StatusInternalServerError
	switch failure.Kind {
	case domain.FailureServerError, domain.FailureClientError:
		status = failure.StatusCode
	case domain.FailureNetwork:
		status = http.StatusServiceUnavailable
	}

	WriteJSONError(w, status, failure.UserMessage())
}
