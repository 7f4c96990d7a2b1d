package courier

import (
	"errors"
	"strings"
	"time"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/errs"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrChatIDIsRequired is returned when attempting to create a courier without a chat ID.
	ErrChatIDIsRequired = errs.NewValueIsRequiredError("chatID")
	// ErrFullNameIsRequired is returned when setting an empty full name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("fullName")
	// ErrCityIsRequired is returned when setting an empty city.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
	// ErrPhoneIsRequired is returned when setting an empty phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierNotVerified is returned when an unverified courier tries to go on shift.
	ErrCourierNotVerified = errors.New("courier has not passed identity verification")
)

// Geolocation is the courier's last reported position with its report time.
type Geolocation struct {
	Point     kernel.GeoPoint
	UpdatedAt time.Time
}

// Courier represents a gig worker who fulfills pickup orders.
// It is an aggregate root covering the courier's registration data,
// verification state, and shift availability.
//
// Business rules:
//   - A fresh courier is unverified and unavailable; registration fills in
//     the profile field by field
//   - Only verified couriers may go available (on shift)
//   - Verification is granted by the identity-photo step and never revoked
//   - Rating is set at creation and never recomputed
type Courier struct {
	id             kernel.UUID
	chatID         int64
	fullName       string
	phone          string
	city           string
	district       string
	cardNumber     string
	verified       bool
	available      bool
	geolocation    *Geolocation
	currentOrderID *kernel.UUID
	rating         float64
	guard          guard.ConstructorGuard
}

// NewCourier creates a courier on first contact with the courier agent.
// The courier starts unverified, unavailable, and with an empty profile;
// registration steps fill it in afterwards.
func NewCourier(id kernel.UUID, chatID int64) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setChatID(chatID),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving profile fields, verification, availability, and geolocation.
func RestoreCourier(
	id kernel.UUID,
	chatID int64,
	fullName, phone, city, district, cardNumber string,
	verified, available bool,
	geolocation *Geolocation,
	currentOrderID *kernel.UUID,
	rating float64,
) (*Courier, error) {
	courier, err := NewCourier(id, chatID)
	if err != nil {
		return nil, err
	}

	if geolocation != nil {
		if err = geolocation.Point.Validate(); err != nil {
			return nil, err
		}
	}
	if currentOrderID != nil {
		if err = currentOrderID.Validate(); err != nil {
			return nil, err
		}
	}

	courier.fullName = fullName
	courier.phone = phone
	courier.city = city
	courier.district = district
	courier.cardNumber = cardNumber
	courier.verified = verified
	courier.available = available
	courier.geolocation = geolocation
	courier.currentOrderID = currentOrderID
	courier.rating = rating
	return courier, nil
}

// Validate checks if the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identifier.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// ChatID returns the external user ID the courier agent knows the courier by.
func (c *Courier) ChatID() int64 {
	return c.chatID
}

// FullName returns the courier's full name, empty until registration.
func (c *Courier) FullName() string {
	return c.fullName
}

// Phone returns the courier's phone number, empty until registration.
func (c *Courier) Phone() string {
	return c.phone
}

// City returns the courier's city, empty until registration.
func (c *Courier) City() string {
	return c.city
}

// District returns the courier's district, may stay empty.
func (c *Courier) District() string {
	return c.district
}

// CardNumber returns the payout card number, empty until provided.
func (c *Courier) CardNumber() string {
	return c.cardNumber
}

// IsVerified reports whether the courier passed the identity-photo check.
func (c *Courier) IsVerified() bool {
	return c.verified
}

// IsAvailable reports whether the courier is on shift and accepting orders.
func (c *Courier) IsAvailable() bool {
	return c.available
}

// Geolocation returns the last reported position, nil when never reported.
func (c *Courier) Geolocation() *Geolocation {
	return c.geolocation
}

// CurrentOrderID returns the order the courier is bound to, nil when free.
func (c *Courier) CurrentOrderID() *kernel.UUID {
	return c.currentOrderID
}

// Rating returns the courier's rating. It is set at creation and
// never recomputed by any current flow.
func (c *Courier) Rating() float64 {
	return c.rating
}

// SetFullName records the courier's full name from the registration step.
func (c *Courier) SetFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

// SetCity records the courier's city and district from a single free-text
// input. The text is split on the first comma: "Town, District" yields
// city "Town" and district "District"; with no comma the whole text becomes
// the city and the district stays empty.
func (c *Courier) SetCity(text string) error {
	city, district, found := strings.Cut(text, ",")
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrCityIsRequired
	}

	c.city = city
	if found {
		c.district = strings.TrimSpace(district)
	} else {
		c.district = ""
	}
	return nil
}

// SetPhone records the courier's phone number. Both the free-text branch
// and the structured contact share are accepted verbatim.
func (c *Courier) SetPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

// SetCardNumber records the payout card number.
func (c *Courier) SetCardNumber(cardNumber string) {
	c.cardNumber = strings.TrimSpace(cardNumber)
}

// Verify marks the courier as having passed the identity check.
// Any received photo at the passport step grants verification; the photo
// content is not inspected.
func (c *Courier) Verify() {
	c.verified = true
}

// MarkAvailable puts the courier on shift. Only verified couriers may
// go available; unverified ones are sent back into registration instead.
func (c *Courier) MarkAvailable() error {
	if !c.verified {
		return ErrCourierNotVerified
	}

	c.available = true
	return nil
}

// MarkUnavailable takes the courier off shift.
func (c *Courier) MarkUnavailable() {
	c.available = false
}

// UpdateLocation records the courier's reported position.
func (c *Courier) UpdateLocation(point kernel.GeoPoint, at time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.geolocation = &Geolocation{Point: point, UpdatedAt: at}
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setChatID(chatID int64) error {
	if chatID == 0 {
		return ErrChatIDIsRequired
	}

	c.chatID = chatID
	return nil
}
