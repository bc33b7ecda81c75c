package models

// Waste types offered by the dashboard select. Free text is also accepted;
// these are suggestions, not an enforced enum.
const (
	WasteTypePlastic = "Plastik"
	WasteTypePaper   = "Kertas"
	WasteTypeGlass   = "Kaca"
	WasteTypeMetal   = "Logam"
	WasteTypeMixed   = "Campuran"
)

// NotificationRequest is the operator's input for a pickup notification.
// It is ephemeral: constructed per submission, handed to the text-generation
// collaborator, rendered and discarded. Never persisted, never auto-retried.
type NotificationRequest struct {
	UserName      string  `json:"userName"`
	PhoneNumber   string  `json:"phoneNumber"`
	PickupDate    string  `json:"pickupDate"`
	PickupTime    string  `json:"pickupTime"`
	WasteType     string  `json:"wasteType"`
	WasteAmountKg float64 `json:"wasteAmountKg"`
	Language      string  `json:"language,omitempty"` // "id" (default) or "en"
}

// NotificationResult carries the generated message back to the dashboard
// together with the pre-built wa.me deep link. Delivery happens out of band;
// nothing here confirms it.
type NotificationResult struct {
	Message      string  `json:"message"`
	WhatsAppLink string  `json:"whatsappLink"`
	PointsEarned float64 `json:"pointsEarned"`
	ExchangeRate int     `json:"exchangeRate"`
	Currency     string  `json:"currency"`
}
