package exhibition

import (
	"fmt"
	"strings"
	"time"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
)

// Type is the calendar position of an exhibition relative to now.
type Type string

const (
	TypeUpcoming  Type = "upcoming"
	TypeCurrent   Type = "current"
	TypeCompleted Type = "completed"
)

// Details holds the editable descriptive fields.
type Details struct {
	Title                string
	Description          string
	ShortDescription     string
	CategoryID           *uint
	StartDate            time.Time
	EndDate              time.Time
	RegistrationDeadline *time.Time
	VenueName            string
	Address              string
	City                 string
	Country              string
	ContactEmail         string
	ContactPhone         string
	Website              string
	IsFree               bool
	MaxParticipants      *int
}

func (d *Details) normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.City = strings.TrimSpace(d.City)
	d.VenueName = strings.TrimSpace(d.VenueName)
	if d.Country == "" {
		d.Country = "Россия"
	}
}

func (d Details) validate() error {
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(d.Title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(d.ShortDescription) > 500 {
		return fmt.Errorf("short description exceeds maximum length of 500 characters")
	}
	if d.StartDate.IsZero() || d.EndDate.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if !d.EndDate.After(d.StartDate) {
		return fmt.Errorf("end date must be after start date")
	}
	if d.RegistrationDeadline != nil && d.RegistrationDeadline.After(d.EndDate) {
		return fmt.Errorf("registration deadline must not be after end date")
	}
	if d.VenueName == "" || d.City == "" {
		return fmt.Errorf("venue and city are required")
	}
	if d.MaxParticipants != nil && *d.MaxParticipants <= 0 {
		return fmt.Errorf("max participants must be positive")
	}
	return nil
}

// Exhibition is an organizer-owned event listing under moderation.
type Exhibition struct {
	id                 uint
	slug               string
	ownerID            uint
	details            Details
	logoRef            string
	bannerRef          string
	isFeatured         bool
	state              lifecycle.State
	stats              svo.Stats
	registrationsCount int64
	version            int
	persistedVersion   int
	createdAt          time.Time
	updatedAt          time.Time
}

func NewExhibition(ownerID uint, details Details, now time.Time) (*Exhibition, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	details.normalize()
	if err := details.validate(); err != nil {
		return nil, err
	}
	return &Exhibition{
		ownerID:   ownerID,
		details:   details,
		state:     lifecycle.NewState(lvo.KindExhibition),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructExhibition rebuilds an Exhibition from persistence.
func ReconstructExhibition(
	id uint,
	slug string,
	ownerID uint,
	details Details,
	logoRef, bannerRef string,
	isFeatured bool,
	state lifecycle.State,
	stats svo.Stats,
	registrationsCount int64,
	version int,
	createdAt, updatedAt time.Time,
) (*Exhibition, error) {
	if id == 0 {
		return nil, fmt.Errorf("exhibition ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("exhibition slug is required")
	}
	if state.Kind() != lvo.KindExhibition {
		return nil, fmt.Errorf("lifecycle kind mismatch: %s", state.Kind())
	}
	return &Exhibition{
		id:                 id,
		slug:               slug,
		ownerID:            ownerID,
		details:            details,
		logoRef:            logoRef,
		bannerRef:          bannerRef,
		isFeatured:         isFeatured,
		state:              state,
		stats:              stats,
		registrationsCount: registrationsCount,
		version:            version,
		persistedVersion:   version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (e *Exhibition) ID() uint                  { return e.id }
func (e *Exhibition) Slug() string              { return e.slug }
func (e *Exhibition) OwnerID() uint             { return e.ownerID }
func (e *Exhibition) Details() Details          { return e.details }
func (e *Exhibition) Title() string             { return e.details.Title }
func (e *Exhibition) LogoRef() string           { return e.logoRef }
func (e *Exhibition) BannerRef() string         { return e.bannerRef }
func (e *Exhibition) IsFeatured() bool          { return e.isFeatured }
func (e *Exhibition) Stats() svo.Stats          { return e.stats }
func (e *Exhibition) RegistrationsCount() int64 { return e.registrationsCount }
func (e *Exhibition) Version() int              { return e.version }
func (e *Exhibition) CreatedAt() time.Time      { return e.createdAt }
func (e *Exhibition) UpdatedAt() time.Time      { return e.updatedAt }

func (e *Exhibition) Ref() lifecycle.EntityRef    { return lifecycle.ExhibitionRef(e.id) }
func (e *Exhibition) DisplayName() string         { return e.details.Title }
func (e *Exhibition) Lifecycle() *lifecycle.State { return &e.state }

// SetID sets the exhibition ID (only for persistence layer use)
func (e *Exhibition) SetID(id uint) {
	e.id = id
}

// AssignSlug sets the slug once. Slugs never change after creation.
func (e *Exhibition) AssignSlug(slug string) error {
	if e.slug != "" {
		return fmt.Errorf("slug is already assigned")
	}
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}
	e.slug = slug
	return nil
}

// ClearSlug drops an unsaved slug so a collided insert can be retried.
func (e *Exhibition) ClearSlug() {
	if e.id == 0 {
		e.slug = ""
	}
}

// Touch bumps updatedAt. The version moves at most one step per load so
// the repository can check the loaded version.
func (e *Exhibition) Touch(now time.Time) {
	e.updatedAt = now
	e.version = e.persistedVersion + 1
}

// UpdateDetails edits the listing. Terminal exhibitions are frozen and the
// slug is left untouched.
func (e *Exhibition) UpdateDetails(details Details, now time.Time) error {
	if e.state.IsTerminal() {
		return fmt.Errorf("%w: %s exhibitions cannot be edited", lifecycle.ErrInvalidTransition, e.state.Status())
	}
	details.normalize()
	if err := details.validate(); err != nil {
		return err
	}
	e.details = details
	e.Touch(now)
	return nil
}

func (e *Exhibition) SetMedia(logoRef, bannerRef string, now time.Time) {
	e.logoRef = logoRef
	e.bannerRef = bannerRef
	e.Touch(now)
}

func (e *Exhibition) SetFeatured(featured bool, now time.Time) {
	if e.isFeatured == featured {
		return
	}
	e.isFeatured = featured
	e.Touch(now)
}

// EffectiveStatus is the status readers see at now.
func (e *Exhibition) EffectiveStatus(now time.Time) lvo.Status {
	return e.state.EffectiveStatus(now, e.details.EndDate)
}

// TypeAt classifies the exhibition by its dates.
func (e *Exhibition) TypeAt(now time.Time) Type {
	switch {
	case now.Before(e.details.StartDate):
		return TypeUpcoming
	case now.After(e.details.EndDate):
		return TypeCompleted
	default:
		return TypeCurrent
	}
}

// IsRegistrationOpen reports whether visitors may still register.
func (e *Exhibition) IsRegistrationOpen(now time.Time) bool {
	if e.EffectiveStatus(now) != lvo.StatusPublished {
		return false
	}
	deadline := e.details.EndDate
	if e.details.RegistrationDeadline != nil {
		deadline = *e.details.RegistrationDeadline
	}
	if now.After(deadline) {
		return false
	}
	if e.details.MaxParticipants != nil && e.registrationsCount >= int64(*e.details.MaxParticipants) {
		return false
	}
	return true
}
