package marketapi

// DTO исходящих запросов. Входящие тела декодируются
// потерпимым нормализатором (см. mapper.go), а не жесткими структурами.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type createPaymentIntentRequest struct {
	AdID string `json:"ad_id"`
}
