package shared

// Roles carried in JWT claims and user records.
const (
	RoleSuperAdmin = "super_admin"
	RoleCandidate  = "candidate"
)

// Asynq task types.
const (
	TypeContactNotification = "contact:notify"
)

// ContactNotificationPayload is queued when a visitor submits the contact
// form on a candidate's page.
type ContactNotificationPayload struct {
	MessageID     int64  `json:"messageId"`
	CandidateSlug string `json:"candidateSlug"`
	To            string `json:"to"`
	CandidateName string `json:"candidateName"`
	SenderName    string `json:"senderName"`
	SenderEmail   string `json:"senderEmail"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
}
