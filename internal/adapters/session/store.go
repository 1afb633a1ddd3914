package session

import (
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store хранит единственный текущий bearer-токен процесса.
// Значение атомарное, last-writer-wins; блокировок не требуется,
// потому что токен не нуждается в транзакционной согласованности.
type Store struct {
	token atomic.Value // string

	// now подменяется в тестах
	now func() time.Time
}

func NewStore() *Store {
	s := &Store{now: time.Now}
	s.token.Store("")
	return s
}

// Set сохраняет токен после успешной аутентификации
func (s *Store) Set(token string) {
	s.token.Store(token)
}

// Clear сбрасывает токен при логауте или истечении срока
func (s *Store) Clear() {
	s.token.Store("")
}

// CurrentToken возвращает текущий токен или пустую строку.
// Если токен - это JWT с истекшим exp, хранилище лениво очищается:
// протухший токен неотличим от его отсутствия.
func (s *Store) CurrentToken() string {
	token, _ := s.token.Load().(string)
	if token == "" {
		return ""
	}

	if s.isExpired(token) {
		// Сравниваем-и-очищаем, чтобы не затереть токен,
		// записанный параллельным логином
		s.token.CompareAndSwap(token, "")
		return ""
	}

	return token
}

// isExpired проверяет exp не валидируя подпись: подпись проверяет бэкенд.
// Токены без exp или вовсе не-JWT считаются бессрочными.
func (s *Store) isExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	expiresAt, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return false
	}

	return expiresAt.Before(s.now())
}
