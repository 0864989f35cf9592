package constants

// Session
const (
	SessionCookieName = "atelier_session"
	ContextKeyUserID  = "user_id"
)

// Context keys populated by the auth middleware
const (
	ContextKeyWorkshopID = "workshop_id"
	ContextKeyRole       = "role"
)

// Public tracking codes
const (
	PublicCodeLength   = 8
	PublicCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Defaults
const (
	DefaultVATRate       = 21
	DefaultBrandingColor = "#2563eb"
	MinPasswordLength    = 6
)
