package usecase

import (
	"context"
	"sync"

	"darna-client-service/internal/core/domain"
)

// FetchState - снимок состояния одной логической загрузки для UI.
// Инварианты: Loading и непустой ErrorMessage взаимоисключающи;
// Value хранит последний успешный результат и переживает неудачные попытки.
type FetchState[T any] struct {
	Loading      bool
	Value        T
	ErrorMessage string // пустая строка - ошибки нет
}

// StateHolder - владелец состояния загрузки на стороне UI.
// Машина состояний: Idle -> Loading -> {Success, Failed}.
type StateHolder[T any] struct {
	mu         sync.Mutex
	generation uint64
	state      FetchState[T]
}

func NewStateHolder[T any]() *StateHolder[T] {
	return &StateHolder[T]{}
}

// Snapshot возвращает копию текущего состояния
func (h *StateHolder[T]) Snapshot() FetchState[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Begin начинает новую попытку: включает Loading и стирает прошлую ошибку.
// Возвращенная попытка - единственный способ записать результат.
func (h *StateHolder[T]) Begin(ctx context.Context) *FetchAttempt[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.generation++
	h.state.Loading = true
	h.state.ErrorMessage = ""

	return &FetchAttempt[T]{holder: h, generation: h.generation, ctx: ctx}
}

// FetchAttempt - одна попытка загрузки, привязанная к своему контексту
// и поколению. Брошенная попытка (отмененный контекст владельца UI или
// начатая позже попытка) не записывает ничего - ни данные, ни ошибку.
type FetchAttempt[T any] struct {
	holder     *StateHolder[T]
	generation uint64
	ctx        context.Context
}

// abandoned проверяет, имеет ли попытка еще право писать.
// Вызывается под мьютексом владельца.
func (a *FetchAttempt[T]) abandoned() bool {
	if a.ctx.Err() != nil {
		return true
	}
	return a.generation != a.holder.generation
}

// Succeed фиксирует успешный результат попытки
func (a *FetchAttempt[T]) Succeed(value T) {
	a.holder.mu.Lock()
	defer a.holder.mu.Unlock()

	if a.abandoned() {
		return
	}

	a.holder.state.Loading = false
	a.holder.state.Value = value
	a.holder.state.ErrorMessage = ""
}

// Fail фиксирует сбой попытки. Загрузка всегда завершается,
// но текст ошибки появляется только если сбой видим по политике:
// скрытый сбой для UI неотличим от успеха без новых данных.
func (a *FetchAttempt[T]) Fail(failure *domain.Failure) {
	a.holder.mu.Lock()
	defer a.holder.mu.Unlock()

	if a.abandoned() {
		return
	}

	a.holder.state.Loading = false
	a.holder.state.ErrorMessage = failure.UserMessage()
}

// Complete - удобная запись исхода "значение или сбой"
func (a *FetchAttempt[T]) Complete(value T, failure *domain.Failure) {
	if failure != nil {
		a.Fail(failure)
		return
	}
	a.Succeed(value)
}
