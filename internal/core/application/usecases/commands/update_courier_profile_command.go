package commands

import (
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

var (
	ErrUpdateCourierProfileCommandIsNotConstructed = errors.New(
		"UpdateCourierProfileCommand must be created via NewUpdateCourierProfileCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one profile field must be set")
)

// UpdateCourierProfileCommand applies one registration step's worth of
// profile data to a courier. Nil fields are left untouched, so each
// registration step sends only the field it collected.
type UpdateCourierProfileCommand struct { //nolint:recvcheck //using for validation
	chatID     int64
	fullName   *string
	cityText   *string
	phone      *string
	cardNumber *string

	guard guard.ConstructorGuard
}

// NewUpdateCourierProfileCommand creates a command carrying the profile
// fields to update. At least one field must be non-nil.
func NewUpdateCourierProfileCommand(
	chatID int64,
	fullName, cityText, phone, cardNumber *string,
) (UpdateCourierProfileCommand, error) {
	command := UpdateCourierProfileCommand{
		fullName:   fullName,
		cityText:   cityText,
		phone:      phone,
		cardNumber: cardNumber,
		guard:      guard.NewConstructorGuard(),
	}

	if err := command.setChatID(chatID); err != nil {
		return UpdateCourierProfileCommand{}, err
	}
	if fullName == nil && cityText == nil && phone == nil && cardNumber == nil {
		return UpdateCourierProfileCommand{}, ErrNothingToUpdate
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierProfileCommandIsNotConstructed)
}

// ChatID returns the external user ID from the command.
func (c UpdateCourierProfileCommand) ChatID() int64 {
	return c.chatID
}

// FullName returns the full name to set, nil when not part of this update.
func (c UpdateCourierProfileCommand) FullName() *string {
	return c.fullName
}

// CityText returns the raw city input to set, nil when not part of this
// update. The aggregate splits it into city and district.
func (c UpdateCourierProfileCommand) CityText() *string {
	return c.cityText
}

// Phone returns the phone number to set, nil when not part of this update.
func (c UpdateCourierProfileCommand) Phone() *string {
	return c.phone
}

// CardNumber returns the payout card to set, nil when not part of this update.
func (c UpdateCourierProfileCommand) CardNumber() *string {
	return c.cardNumber
}

func (c *UpdateCourierProfileCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return ErrChatIDIsRequired
	}

	c.chatID = chatID
	return nil
}
