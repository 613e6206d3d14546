package rpc

// Wire records. Field names follow the storage column names so the web
// client sees the same shapes the original API served.

// User is the wire form of a registered account. The password hash never
// leaves the server.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

// OrganizerProfile is the wire form of a payment-handle profile.
type OrganizerProfile struct {
	UserID                  string `json:"user_id"`
	VenmoUsername           string `json:"venmo_username"`
	VenmoUsernameNormalized string `json:"venmo_username_normalized"`
	CreatedAt               string `json:"created_at"`
	UpdatedAt               string `json:"updated_at"`
}

// Event is the wire form of an event.
type Event struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Amount                 float64 `json:"amount"`
	OrganizerVenmoUsername string  `json:"organizer_venmo_username"`
	OrganizerUserID        string  `json:"organizer_user_id"`
	CreatedAt              string  `json:"created_at"`
}

// Participant is the wire form of a participant row.
type Participant struct {
	ID                    string `json:"id"`
	EventID               string `json:"event_id"`
	Name                  string `json:"name"`
	Status                string `json:"status"`
	JoinedAt              string `json:"joined_at"`
	ParticipantUserID     string `json:"participant_user_id,omitempty"`
	GuestIdentityKey      string `json:"guest_identity_key,omitempty"`
	PaymentInitiatedAt    string `json:"payment_initiated_at,omitempty"`
	MarkedPaidAt          string `json:"marked_paid_at,omitempty"`
	StatusChangedByUserID string `json:"status_changed_by_user_id,omitempty"`
	ReminderCount         int    `json:"reminder_count"`
	NoShowFlag            bool   `json:"no_show_flag"`
}

// OrganizerSummary is one entry of the organizer's event history.
type OrganizerSummary struct {
	Event        Event         `json:"event"`
	Participants []Participant `json:"participants"`
	PaidCount    int           `json:"paid_count"`
	OwesCount    int           `json:"owes_count"`
}

// JoinedSummary is one entry of a caller's joined-events list.
type JoinedSummary struct {
	Event             Event       `json:"event"`
	Participant       Participant `json:"participant"`
	PaidCount         int         `json:"paid_count"`
	OwesCount         int         `json:"owes_count"`
	TotalParticipants int         `json:"total_participants"`
}

// Auth messages.

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

// Profile messages.

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile *OrganizerProfile `json:"profile,omitempty"`
}

type UpsertProfileRequest struct {
	VenmoUsername string `json:"venmo_username"`
}

type UpsertProfileResponse struct {
	Profile OrganizerProfile `json:"profile"`
}

// Event messages.

type CreateEventRequest struct {
	// Name and Amount arrive as raw form input; the amount string is
	// validated for two-decimal format before parsing.
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type CreateEventResponse struct {
	Event Event `json:"event"`
}

type GetEventRequest struct {
	EventID string `json:"event_id"`
	// GuestIdentityKey lets an anonymous caller be recognized among the
	// participants. Never validated server-side.
	GuestIdentityKey string `json:"guest_identity_key,omitempty"`
}

type GetEventResponse struct {
	Event        Event         `json:"event"`
	Participants []Participant `json:"participants"`
	PaidCount    int           `json:"paid_count"`
	OwesCount    int           `json:"owes_count"`
	IsComplete   bool          `json:"is_complete"`
	// CurrentParticipant is the caller's canonical row in this event, nil
	// when the caller has not joined.
	CurrentParticipant *Participant `json:"current_participant,omitempty"`
	IsOrganizer        bool         `json:"is_organizer"`
	ShareMessage       string       `json:"share_message"`
	PayLink            string       `json:"pay_link"`
}

type DeleteEventRequest struct {
	EventID string `json:"event_id"`
}

type DeleteEventResponse struct{}

type JoinEventRequest struct {
	EventID          string `json:"event_id"`
	Name             string `json:"name"`
	GuestIdentityKey string `json:"guest_identity_key,omitempty"`
}

type JoinEventResponse struct {
	Participant Participant `json:"participant"`
}

type SetParticipantStatusRequest struct {
	EventID       string `json:"event_id"`
	ParticipantID string `json:"participant_id"`
	Status        string `json:"status"`
}

type SetParticipantStatusResponse struct {
	Participant Participant `json:"participant"`
}

type ListOrganizerEventsRequest struct{}

type ListOrganizerEventsResponse struct {
	Summaries []OrganizerSummary `json:"summaries"`
}

type ListJoinedEventsRequest struct {
	GuestIdentityKey string `json:"guest_identity_key,omitempty"`
}

type ListJoinedEventsResponse struct {
	Summaries []JoinedSummary `json:"summaries"`
}

type GetShareMessageRequest struct {
	EventID string `json:"event_id"`
}

type GetShareMessageResponse struct {
	Message string `json:"message"`
	PayLink string `json:"pay_link"`
}
