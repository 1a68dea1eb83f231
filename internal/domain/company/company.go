package company

import (
	"fmt"
	"strings"
	"time"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
)

// Profile holds the editable company fields.
type Profile struct {
	Name             string
	Description      string
	ShortDescription string
	CategoryID       *uint
	City             string
	Country          string
	Address          string
	Website          string
	Email            string
	Phone            string
	FoundedYear      *int
	EmployeesCount   string
}

func (p *Profile) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.City = strings.TrimSpace(p.City)
	if p.Country == "" {
		p.Country = "Россия"
	}
}

func (p Profile) validate(now time.Time) error {
	if p.Name == "" {
		return fmt.Errorf("company name is required")
	}
	if len(p.Name) > 200 {
		return fmt.Errorf("company name exceeds maximum length of 200 characters")
	}
	if len(p.ShortDescription) > 500 {
		return fmt.Errorf("short description exceeds maximum length of 500 characters")
	}
	if p.FoundedYear != nil && (*p.FoundedYear < 1800 || *p.FoundedYear > now.Year()) {
		return fmt.Errorf("founded year is out of range")
	}
	return nil
}

// Company is an exhibitor profile under moderation.
type Company struct {
	id                   uint
	slug                 string
	ownerID              uint
	profile              Profile
	logoRef              string
	state                lifecycle.State
	stats                svo.Stats
	contactRequestsCount int64
	isVerified           bool
	isPremium            bool
	version              int
	persistedVersion     int
	createdAt            time.Time
	updatedAt            time.Time
}

func NewCompany(ownerID uint, profile Profile, now time.Time) (*Company, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	profile.normalize()
	if err := profile.validate(now); err != nil {
		return nil, err
	}
	return &Company{
		ownerID:   ownerID,
		profile:   profile,
		state:     lifecycle.NewState(lvo.KindCompany),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCompany rebuilds a Company from persistence.
func ReconstructCompany(
	id uint,
	slug string,
	ownerID uint,
	profile Profile,
	logoRef string,
	state lifecycle.State,
	stats svo.Stats,
	contactRequestsCount int64,
	isVerified, isPremium bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Company, error) {
	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("company slug is required")
	}
	if state.Kind() != lvo.KindCompany {
		return nil, fmt.Errorf("lifecycle kind mismatch: %s", state.Kind())
	}
	return &Company{
		id:                   id,
		slug:                 slug,
		ownerID:              ownerID,
		profile:              profile,
		logoRef:              logoRef,
		state:                state,
		stats:                stats,
		contactRequestsCount: contactRequestsCount,
		isVerified:           isVerified,
		isPremium:            isPremium,
		version:              version,
		persistedVersion:     version,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func (c *Company) ID() uint                    { return c.id }
func (c *Company) Slug() string                { return c.slug }
func (c *Company) OwnerID() uint               { return c.ownerID }
func (c *Company) Profile() Profile            { return c.profile }
func (c *Company) Name() string                { return c.profile.Name }
func (c *Company) LogoRef() string             { return c.logoRef }
func (c *Company) Stats() svo.Stats            { return c.stats }
func (c *Company) ContactRequestsCount() int64 { return c.contactRequestsCount }
func (c *Company) IsVerified() bool            { return c.isVerified }
func (c *Company) IsPremium() bool             { return c.isPremium }
func (c *Company) Version() int                { return c.version }
func (c *Company) CreatedAt() time.Time        { return c.createdAt }
func (c *Company) UpdatedAt() time.Time        { return c.updatedAt }

func (c *Company) Ref() lifecycle.EntityRef    { return lifecycle.CompanyRef(c.id) }
func (c *Company) DisplayName() string         { return c.profile.Name }
func (c *Company) Lifecycle() *lifecycle.State { return &c.state }

// SetID sets the company ID (only for persistence layer use)
func (c *Company) SetID(id uint) {
	c.id = id
}

// AssignSlug sets the slug once. Slugs never change after creation.
func (c *Company) AssignSlug(slug string) error {
	if c.slug != "" {
		return fmt.Errorf("slug is already assigned")
	}
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}
	c.slug = slug
	return nil
}

// ClearSlug drops an unsaved slug so a collided insert can be retried.
func (c *Company) ClearSlug() {
	if c.id == 0 {
		c.slug = ""
	}
}

// Touch bumps updatedAt and moves the version one step past the loaded one.
func (c *Company) Touch(now time.Time) {
	c.updatedAt = now
	c.version = c.persistedVersion + 1
}

// UpdateProfile edits the profile; the slug stays as assigned.
func (c *Company) UpdateProfile(profile Profile, now time.Time) error {
	if c.state.IsTerminal() {
		return fmt.Errorf("%w: %s companies cannot be edited", lifecycle.ErrInvalidTransition, c.state.Status())
	}
	profile.normalize()
	if err := profile.validate(now); err != nil {
		return err
	}
	c.profile = profile
	c.Touch(now)
	return nil
}

func (c *Company) SetLogo(ref string, now time.Time) {
	c.logoRef = ref
	c.Touch(now)
}

func (c *Company) MarkVerified(now time.Time) {
	if c.isVerified {
		return
	}
	c.isVerified = true
	c.Touch(now)
}

// AcceptsContacts reports whether visitors may send contact requests.
func (c *Company) AcceptsContacts() bool {
	return c.state.Status() == lvo.StatusActive
}
