package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// FailureKind - небольшая таксономия сбоев, в которую сводятся
// все транспортные и протокольные ошибки.
type FailureKind string

const (
	// FailureForbidden - HTTP 403. Не показывается пользователю.
	FailureForbidden FailureKind = "forbidden"
	// FailureServerError - HTTP 5xx
	FailureServerError FailureKind = "server_error"
	// FailureClientError - прочие HTTP 4xx
	FailureClientError FailureKind = "client_error"
	// FailureNetwork - ответ не был получен (обрыв, таймаут)
	FailureNetwork FailureKind = "network"
	// FailureUnknown - все остальное
	FailureUnknown FailureKind = "unknown"
)

// NetworkUnavailableMessage - текст, который видит пользователь при сетевом сбое
const NetworkUnavailableMessage = "Network unavailable. Check your connection and try again."

// Failure - классифицированный сбой одной попытки загрузки.
// Это значение, а не паника: декодер и транспорт никогда не роняют вызывающий код.
type Failure struct {
	Kind       FailureKind
	StatusCode int // только для протокольных видов
	Message    string
}

func (f *Failure) Error() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", f.Kind, f.StatusCode, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// failureVisibility - явная таблица политики видимости.
// 403 намеренно скрыт от пользователя: для этого приложения отказ в доступе -
// ожидаемая, "тихая" ситуация. Правило глобальное, без различия эндпоинтов.
var failureVisibility = map[FailureKind]bool{
	FailureForbidden:   false,
	FailureServerError: true,
	FailureClientError: true,
	FailureNetwork:     true,
	FailureUnknown:     true,
}

// UserVisible сообщает, должен ли сбой показываться пользователю
func (f *Failure) UserVisible() bool {
	return failureVisibility[f.Kind]
}

// UserMessage возвращает текст для пользователя или пустую строку,
// если сбой скрыт политикой видимости.
func (f *Failure) UserMessage() string {
	if !f.UserVisible() {
		return ""
	}
	if f.Message != "" {
		return f.Message
	}
	return string(f.Kind)
}

// ClassifyStatus сводит неуспешный HTTP-статус к виду сбоя
func ClassifyStatus(status int) *Failure {
	switch {
	case status == 403:
		return &Failure{Kind: FailureForbidden, StatusCode: status, Message: "access denied"}
	case status >= 500:
		return &Failure{
			Kind:       FailureServerError,
			StatusCode: status,
			Message:    fmt.Sprintf("server error (code %d)", status),
		}
	default:
		return &Failure{
			Kind:       FailureClientError,
			StatusCode: status,
			Message:    fmt.Sprintf("request rejected (code %d)", status),
		}
	}
}

// ClassifyError сводит ошибку транспорта к виду сбоя.
// Если ответ не был получен вовсе - это сетевой сбой, иначе Unknown.
func ClassifyError(err error) *Failure {
	if err == nil {
		return nil
	}

	// Уже классифицированный сбой пробрасываем как есть
	var failure *Failure
	if errors.As(err, &failure) {
		return failure
	}

	if isNetworkError(err) {
		return &Failure{Kind: FailureNetwork, Message: NetworkUnavailableMessage}
	}

	return &Failure{Kind: FailureUnknown, Message: err.Error()}
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
