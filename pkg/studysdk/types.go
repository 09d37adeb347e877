package studysdk

// ============================================================================
// Auth types
// ============================================================================

// LoginRequest is the email/password login form.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProviderResult is the account record returned by an identity provider's
// popup flow (Google, GitHub). The popup itself happens outside this SDK;
// callers hand over the provider's result to complete the login.
type ProviderResult struct {
	Provider    string `json:"providerId"`
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// providerLoginRequest is the social-login body for POST /api/auth/login.
type providerLoginRequest struct {
	Provider ProviderResult `json:"provider"`
	Email    string         `json:"email"`
}

// RegisterRequest is the sign-up form. The profile picture is optional.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role"     validate:"required,oneof=student tutor admin"`

	ProfilePicture *FileUpload `json:"-"`
}

// User is an account record as returned by the users endpoints.
type User struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// UserPage is one page of GET /api/users.
type UserPage struct {
	Users      []User `json:"users"`
	TotalUsers int    `json:"totalUsers"`
	TotalPages int    `json:"totalPages"`
}

// LoginHistoryEntry is one recorded login.
type LoginHistoryEntry struct {
	ID        string `json:"_id"`
	UserID    string `json:"userId"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	LoginAt   string `json:"loginAt,omitempty"`
}

// ============================================================================
// Study session types
// ============================================================================

// Session status values as stored by the backend. New sessions start out
// pending and an admin moves them to accepted or rejected.
const (
	SessionStatusPending  = "pending"
	SessionStatusAccepted = "accepted"
	SessionStatusRejected = "rejected"
)

// StudySession is a tutoring session record.
type StudySession struct {
	ID                string  `json:"_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	TutorName         string  `json:"tutorName"`
	TutorEmail        string  `json:"tutorEmail"`
	RegistrationStart string  `json:"registrationStart"`
	RegistrationEnd   string  `json:"registrationEnd"`
	ClassStartDate    string  `json:"classStartDate"`
	ClassStartTime    string  `json:"classStartTime"`
	ClassEndTime      string  `json:"classEndTime"`
	Duration          string  `json:"duration"`
	Fee               float64 `json:"fee"`
	MaxParticipants   int     `json:"maxParticipants"`
	Status            string  `json:"status"`
	RejectionReason   string  `json:"rejectionReason,omitempty"`
	Feedback          string  `json:"feedback,omitempty"`
	Image             string  `json:"image,omitempty"`
}

// CreateSessionRequest is the tutor's session proposal form.
type CreateSessionRequest struct {
	Title             string  `json:"title"             validate:"required"`
	Description       string  `json:"description"       validate:"required"`
	RegistrationStart string  `json:"registrationStart" validate:"required"`
	RegistrationEnd   string  `json:"registrationEnd"   validate:"required"`
	ClassStartDate    string  `json:"classStartDate"    validate:"required"`
	ClassStartTime    string  `json:"classStartTime"    validate:"required"`
	ClassEndTime      string  `json:"classEndTime"      validate:"required"`
	Duration          string  `json:"duration"          validate:"required"`
	Fee               float64 `json:"fee"`
	MaxParticipants   int     `json:"maxParticipants"   validate:"gt=0"`
	TutorName         string  `json:"tutorName"         validate:"required"`
	TutorEmail        string  `json:"tutorEmail"        validate:"required,email"`

	Image *FileUpload `json:"-"`
}

// SessionDecision is the admin's approval/rejection of a proposed session.
type SessionDecision struct {
	Status          string  `json:"status" validate:"required,oneof=accepted rejected"`
	Fee             float64 `json:"fee,omitempty"`
	RejectionReason string  `json:"rejectionReason,omitempty"`
	Feedback        string  `json:"feedback,omitempty"`
}

// ============================================================================
// Material types
// ============================================================================

// Material is a study resource a tutor shares for a session.
type Material struct {
	ID         string `json:"_id"`
	Title      string `json:"title"`
	SessionID  string `json:"sessionId"`
	TutorName  string `json:"tutorName"`
	TutorEmail string `json:"tutorEmail"`
	Image      string `json:"image,omitempty"`
	Link       string `json:"link,omitempty"`
}

// MaterialPage is one page of GET /api/materials/get-all-materials.
type MaterialPage struct {
	Materials      []Material `json:"materials"`
	TotalMaterials int        `json:"totalMaterials"`
}

// UploadMaterialRequest is the tutor's material upload form.
type UploadMaterialRequest struct {
	Title      string `json:"title"      validate:"required"`
	SessionID  string `json:"sessionId"  validate:"required"`
	TutorName  string `json:"tutorName"  validate:"required"`
	TutorEmail string `json:"tutorEmail" validate:"required,email"`
	Link       string `json:"link"`

	Image *FileUpload `json:"-"`
}

// ============================================================================
// Note types
// ============================================================================

// Note is a student's personal study note.
type Note struct {
	ID      string `json:"_id"`
	Email   string `json:"email"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NotePage is one page of GET /api/get-notes.
type NotePage struct {
	Notes      []Note `json:"notes"`
	TotalPages int    `json:"totalPages"`
}

// CreateNoteRequest is the note creation form.
type CreateNoteRequest struct {
	Email   string `json:"email"   validate:"required,email"`
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateNoteRequest edits an existing note's text.
type UpdateNoteRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ============================================================================
// Booking and payment types
// ============================================================================

// PaymentIntentResult is the subset of the payment provider's confirmation
// the backend records with a booking. Card tokenization itself happens with
// the provider, outside this SDK.
type PaymentIntentResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

// BookSessionRequest records a paid booking.
type BookSessionRequest struct {
	SessionID      string               `json:"sessionId" validate:"required"`
	UserID         string               `json:"userId"    validate:"required"`
	PaymentDetails *PaymentIntentResult `json:"paymentDetails,omitempty"`
}

// Booking is a student's booked session.
type Booking struct {
	ID        string `json:"_id"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName,omitempty"`
}

// ============================================================================
// Review types
// ============================================================================

// Review is a student's rating of a booked session.
type Review struct {
	ID         string `json:"_id"`
	SessionID  string `json:"sessionId"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	ReviewText string `json:"reviewText"`
	Rating     int    `json:"rating"`
	Date       string `json:"date"`
}

// AddReviewRequest is the review submission form. Both the text and a
// non-zero rating are required, matching the form-level check in the app.
type AddReviewRequest struct {
	SessionID  string `json:"sessionId"  validate:"required"`
	UserID     string `json:"userId"     validate:"required"`
	UserName   string `json:"userName"`
	ReviewText string `json:"reviewText" validate:"required"`
	Rating     int    `json:"rating"     validate:"required,min=1,max=5"`
	Date       string `json:"date"`
}

// ============================================================================
// Announcement types
// ============================================================================

// Announcement is a platform-wide admin notice.
type Announcement struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// AnnouncementPage is one page of GET /api/announcements.
type AnnouncementPage struct {
	Announcements []Announcement `json:"announcements"`
	TotalPages    int            `json:"totalPages"`
}

// CreateAnnouncementRequest is the admin announcement form.
type CreateAnnouncementRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}
