package domain

import (
	"strings"
	"time"
)

// AdKind - закрытый набор типов объявления.
// Ровно одна из трех структур деталей заполнена и соответствует Kind.
type AdKind string

const (
	KindDiscount  AdKind = "discount"
	KindPromotion AdKind = "promotion"
	KindGame      AdKind = "game"
)

// Category - закрытый набор категорий объявления.
type Category string

const (
	CategoryFood    Category = "food"
	CategoryFashion Category = "fashion"
	CategoryLeisure Category = "leisure"
	CategoryHealth  Category = "health"
	CategoryOther   Category = "other"
)

// Ad - основная доменная сущность: объявление/акция маркетплейса.
// Создается нормализатором на каждый ответ и далее не изменяется.
type Ad struct {
	ID          string
	Title       string
	Description string
	ImageID     string
	Kind        AdKind
	Category    Category

	// Ровно одно из трех полей не nil, согласно Kind
	Discount  *DiscountDetails
	Promotion *PromotionDetails
	Game      *GameDetails

	ExpiresAt *time.Time
	SponsorID string
	QRPayload string
}

// DiscountDetails - детали скидки
type DiscountDetails struct {
	Percent       int
	OldPriceCents int64
	NewPriceCents int64
}

// PromotionDetails - детали промо-акции
type PromotionDetails struct {
	Text       string
	Conditions string
}

// GameDetails - детали розыгрыша
type GameDetails struct {
	Prize    string
	DrawDate *time.Time
}

// kindSynonyms - известные написания типа объявления на проводе.
// Бэкенд присылает тип в разных языках и регистрах.
var kindSynonyms = map[string]AdKind{
	"discount":  KindDiscount,
	"descuento": KindDiscount,
	"rebaja":    KindDiscount,
	"promotion": KindPromotion,
	"promocion": KindPromotion,
	"promoción": KindPromotion,
	"promo":     KindPromotion,
	"game":      KindGame,
	"juego":     KindGame,
	"sorteo":    KindGame,
}

// ParseAdKind сопоставляет строку с провода с типом объявления.
// Неизвестные значения сводятся к KindPromotion - это документированный
// дефолт, декодирование никогда не падает из-за типа.
func ParseAdKind(raw string) AdKind {
	if kind, ok := kindSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return kind
	}
	return KindPromotion
}

// KnownAdKind сообщает, распознана ли строка типа.
// Нужно нормализатору, чтобы залогировать факт дефолта.
func KnownAdKind(raw string) bool {
	_, ok := kindSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

var categorySynonyms = map[string]Category{
	"food":            CategoryFood,
	"gastronomia":     CategoryFood,
	"restauracion":    CategoryFood,
	"fashion":         CategoryFashion,
	"moda":            CategoryFashion,
	"ropa":            CategoryFashion,
	"leisure":         CategoryLeisure,
	"ocio":            CategoryLeisure,
	"entretenimiento": CategoryLeisure,
	"health":          CategoryHealth,
	"salud":           CategoryHealth,
	"belleza":         CategoryHealth,
	"other":           CategoryOther,
	"otros":           CategoryOther,
}

// ParseCategory сопоставляет строку с провода с категорией.
// Неизвестные значения сводятся к CategoryOther.
func ParseCategory(raw string) Category {
	if cat, ok := categorySynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return cat
	}
	return CategoryOther
}
