package rest

import (
	"time"

	"darna-client-service/internal/core/domain"
)

// AdDTO - представление объявления в ответах фасада
type AdDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageID     string `json:"image_id,omitempty"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`

	Discount  *DiscountDTO  `json:"discount,omitempty"`
	Promotion *PromotionDTO `json:"promotion,omitempty"`
	Game      *GameDTO      `json:"game,omitempty"`

	ExpiresAt *string `json:"expires_at,omitempty"`
	SponsorID string  `json:"sponsor_id,omitempty"`
	QRPayload string  `json:"qr_payload,omitempty"`
}

type DiscountDTO struct {
	Percent       int   `json:"percent"`
	OldPriceCents int64 `json:"old_price_cents"`
	NewPriceCents int64 `json:"new_price_cents"`
}

type PromotionDTO struct {
	Text       string `json:"text"`
	Conditions string `json:"conditions"`
}

type GameDTO struct {
	Prize    string  `json:"prize"`
	DrawDate *string `json:"draw_date,omitempty"`
}

type SellerProfileDTO struct {
	Reputation ReputationDTO `json:"reputation"`
	Feedbacks  []FeedbackDTO `json:"feedbacks"`
}

type ReputationDTO struct {
	SellerID     string  `json:"seller_id"`
	Score        float64 `json:"score"`
	ReviewsCount int     `json:"reviews_count"`
}

type FeedbackDTO struct {
	ID        string  `json:"id"`
	AuthorID  string  `json:"author_id"`
	Comment   string  `json:"comment"`
	Rating    int     `json:"rating"`
	CreatedAt *string `json:"created_at,omitempty"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PurchaseRequestDTO struct {
	AdID string `json:"ad_id"`
}

type PurchaseResultDTO struct {
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
}

// --- маппинг домена в DTO ---

func toAdDTO(ad domain.Ad) AdDTO {
	dto := AdDTO{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		ImageID:     ad.ImageID,
		Kind:        string(ad.Kind),
		Category:    string(ad.Category),
		ExpiresAt:   formatTime(ad.ExpiresAt),
		SponsorID:   ad.SponsorID,
		QRPayload:   ad.QRPayload,
	}

	if ad.Discount != nil {
		dto.Discount = &DiscountDTO{
			Percent:       ad.Discount.Percent,
			OldPriceCents: ad.Discount.OldPriceCents,
			NewPriceCents: ad.Discount.NewPriceCents,
		}
	}
	if ad.Promotion != nil {
		dto.Promotion = &PromotionDTO{
			Text:       ad.Promotion.Text,
			Conditions: ad.Promotion.Conditions,
		}
	}
	if ad.Game != nil {
		dto.Game = &GameDTO{
			Prize:    ad.Game.Prize,
			DrawDate: formatTime(ad.Game.DrawDate),
		}
	}

	return dto
}

func toAdDTOs(ads []domain.Ad) []AdDTO {
	dtos := make([]AdDTO, len(ads))
	for i, ad := range ads {
		dtos[i] = toAdDTO(ad)
	}
	return dtos
}

func toSellerProfileDTO(profile *domain.SellerProfile) SellerProfileDTO {
	feedbacks := make([]FeedbackDTO, len(profile.Feedbacks))
	for i, fb := range profile.Feedbacks {
		feedbacks[i] = FeedbackDTO{
			ID:        fb.ID,
			AuthorID:  fb.AuthorID,
			Comment:   fb.Comment,
			Rating:    fb.Rating,
			CreatedAt: formatTime(fb.CreatedAt),
		}
	}

	return SellerProfileDTO{
		Reputation: ReputationDTO{
			SellerID:     profile.Reputation.SellerID,
			Score:        profile.Reputation.Score,
			ReviewsCount: profile.Reputation.ReviewsCount,
		},
		Feedbacks: feedbacks,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
