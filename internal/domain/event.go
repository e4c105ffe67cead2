package domain

import (
	"context"
	"time"
)

// Event modes accepted by the schema.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

// Event represents a schedulable public event. Slug, CreatedAt, and UpdatedAt
// are derived by the service layer; everything else is caller-supplied.
// Date is stored canonically as YYYY-MM-DD and Time as zero-padded HH:MM.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Slug        string    `json:"slug"`
	Description string    `json:"description" validate:"required"`
	Overview    string    `json:"overview" validate:"required"`
	Image       string    `json:"image" validate:"required"`
	Venue       string    `json:"venue" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Date        string    `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	Mode        string    `json:"mode" validate:"required,oneof=online offline hybrid"`
	Audience    string    `json:"audience" validate:"required"`
	Agenda      []string  `json:"agenda" validate:"required,min=1"`
	Organizer   string    `json:"organizer" validate:"required"`
	Tags        []string  `json:"tags" validate:"required,min=1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventUpdate is a partial write: nil fields are left untouched. The service
// re-derives the slug when Title is set and re-normalizes Date/Time when those
// are set; unset fields skip their pipeline step entirely.
type EventUpdate struct {
	Title       *string
	Description *string
	Overview    *string
	Image       *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *string
	Audience    *string
	Agenda      *[]string
	Organizer   *string
	Tags        *[]string
}

// EventRepository defines event storage. Implementations map storage-level
// "no document" and duplicate-slug conditions to ErrNotFound and
// ErrDuplicateSlug.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	// SlugTaken reports whether any event other than excludeID already
	// holds slug. excludeID may be empty on the create path.
	SlugTaken(ctx context.Context, slug, excludeID string) (bool, error)
}

// EventService is the write/read surface exposed to the delivery layer.
// Writes run the pre-persist pipeline (schema validation, slug derivation,
// date/time normalization) before committing.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, id string, update *EventUpdate) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
}
