package port

// TokenSourcePort - read-only доступ к текущему bearer-токену.
// Интерсепторы читают токен в момент отправки каждого запроса
// и никогда не блокируются в ожидании его появления.
type TokenSourcePort interface {
	// CurrentToken возвращает текущий токен или пустую строку
	CurrentToken() string
}

// SessionStorePort - полный доступ к состоянию сессии.
// Запись выполняет только поток аутентификации; семантика last-writer-wins.
type SessionStorePort interface {
	TokenSourcePort
	Set(token string)
	Clear()
}
