package marketapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"darna-client-service/internal/core/domain"
	"darna-client-service/internal/core/port"
)

// rawObject - сырое JSON-представление одной сущности.
// Каждое поле декодируется отдельно: сломанное поле портит только себя,
// соседние поля и соседние элементы массива выживают.
type rawObject map[string]json.RawMessage

// toDomainAd нормализует сырой JSON-объект в доменную сущность.
// Никогда не возвращает ошибку: все поля опциональны на проводе,
// отсутствующее или нечитаемое поле получает дефолт.
func toDomainAd(raw json.RawMessage, logger port.LoggerPort) domain.Ad {
	obj := decodeObject(raw)

	kindRaw := decodeString(obj["type"])
	kind := domain.ParseAdKind(kindRaw)
	if !domain.KnownAdKind(kindRaw) {
		// Дефолт не показывается пользователю, но должен быть виден в логах
		logger.Warn("Unknown ad type on the wire, defaulting to promotion", port.Fields{
			"raw_type": kindRaw,
			"ad_id":    decodeRef(obj["_id"]),
		})
	}

	ad := domain.Ad{
		ID:          decodeRef(obj["_id"]),
		Title:       decodeString(obj["title"]),
		Description: decodeString(obj["description"]),
		ImageID:     decodeRef(obj["image"]),
		Kind:        kind,
		Category:    domain.ParseCategory(decodeString(obj["category"])),
		ExpiresAt:   decodeFlexTime(obj["expirationDate"]),
		SponsorID:   decodeRef(obj["sponsor"]),
		QRPayload:   decodeString(obj["qrCode"]),
	}

	// Заполняется ровно одна деталь, соответствующая Kind.
	// Даже если провод принес и другие объекты деталей - они игнорируются.
	switch kind {
	case domain.KindDiscount:
		d := decodeObject(obj["discount"])
		ad.Discount = &domain.DiscountDetails{
			Percent:       decodeInt(d["percentage"]),
			OldPriceCents: decodeInt64(d["oldPrice"]),
			NewPriceCents: decodeInt64(d["newPrice"]),
		}
	case domain.KindGame:
		g := decodeObject(obj["game"])
		ad.Game = &domain.GameDetails{
			Prize:    decodeString(g["prize"]),
			DrawDate: decodeFlexTime(g["drawDate"]),
		}
	default:
		p := decodeObject(obj["promotion"])
		ad.Promotion = &domain.PromotionDetails{
			Text:       decodeString(p["text"]),
			Conditions: decodeString(p["conditions"]),
		}
	}

	return ad
}

// toDomainAds нормализует массив сущностей.
// Один сломанный элемент не прерывает декодирование остальных:
// не-объекты отбрасываются с предупреждением в лог.
func toDomainAds(body []byte, logger port.LoggerPort) []domain.Ad {
	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		logger.Warn("Ads response is not a JSON array, returning empty list", port.Fields{
			"error": err.Error(),
		})
		return []domain.Ad{}
	}

	ads := make([]domain.Ad, 0, len(elems))
	for i, elem := range elems {
		if !isJSONObject(elem) {
			logger.Warn("Dropping non-object element from ads array", port.Fields{"index": i})
			continue
		}
		ads = append(ads, toDomainAd(elem, logger))
	}
	return ads
}

// toDomainReputation нормализует ответ эндпоинта репутации.
// Ссылка на продавца проходит ту же процедуру распаковки, что и _id объявления.
func toDomainReputation(body []byte, requestedSellerID string, logger port.LoggerPort) domain.Reputation {
	obj := decodeObject(body)

	sellerID := decodeRef(obj["user"])
	if sellerID == "" {
		sellerID = requestedSellerID
	}

	return domain.Reputation{
		SellerID:     sellerID,
		Score:        decodeFloat64(obj["score"]),
		ReviewsCount: decodeInt(obj["reviewsCount"]),
	}
}

func toDomainFeedback(raw json.RawMessage, logger port.LoggerPort) domain.Feedback {
	obj := decodeObject(raw)
	return domain.Feedback{
		ID:        decodeRef(obj["_id"]),
		AuthorID:  decodeRef(obj["author"]),
		Comment:   decodeString(obj["comment"]),
		Rating:    decodeInt(obj["rating"]),
		CreatedAt: decodeFlexTime(obj["createdAt"]),
	}
}

func toDomainFeedbacks(body []byte, logger port.LoggerPort) []domain.Feedback {
	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		logger.Warn("Feedbacks response is not a JSON array, returning empty list", port.Fields{
			"error": err.Error(),
		})
		return []domain.Feedback{}
	}

	feedbacks := make([]domain.Feedback, 0, len(elems))
	for i, elem := range elems {
		if !isJSONObject(elem) {
			logger.Warn("Dropping non-object element from feedbacks array", port.Fields{"index": i})
			continue
		}
		feedbacks = append(feedbacks, toDomainFeedback(elem, logger))
	}
	return feedbacks
}

func toDomainPaymentIntent(body []byte) domain.PaymentIntent {
	obj := decodeObject(body)
	return domain.PaymentIntent{
		ID:           decodeRef(obj["_id"]),
		ClientSecret: decodeString(obj["clientSecret"]),
	}
}

// --- хелперы потерпимого декодирования отдельных полей ---

// decodeObject читает значение как JSON-объект; любая другая форма дает пустую карту
func decodeObject(raw json.RawMessage) rawObject {
	var obj rawObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return rawObject{}
	}
	return obj
}

func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// decodeRef применяет единую процедуру распаковки ссылок (см. ObjectRef)
func decodeRef(raw json.RawMessage) string {
	var ref ObjectRef
	_ = json.Unmarshal(raw, &ref) // ObjectRef.UnmarshalJSON не возвращает ошибок
	return ref.ID
}

func decodeFlexTime(raw json.RawMessage) *time.Time {
	var ft FlexTime
	_ = json.Unmarshal(raw, &ft) // FlexTime.UnmarshalJSON не возвращает ошибок
	return ft.Ptr()
}

// decodeInt64 терпит число и число-в-строке: бэкенд отдает и так, и так
func decodeInt64(raw json.RawMessage) int64 {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	switch val := v.(type) {
	case float64:
		return int64(val)
	case string:
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return 0
}

func decodeInt(raw json.RawMessage) int {
	return int(decodeInt64(raw))
}

func decodeFloat64(raw json.RawMessage) float64 {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	switch val := v.(type) {
	case float64:
		return val
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return 0
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
