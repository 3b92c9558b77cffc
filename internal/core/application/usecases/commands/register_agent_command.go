package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRegisterAgentCommandIsNotConstructed = errors.New(
		"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
	)
)

// RegisterAgentCommand represents a delivery agent's application to join the
// platform. Captures the registration form fields: display name, contact
// details, and the location picked on the registration map.
//
// Example:
//
//	loc, _ := kernel.NewGeoLocation(31.2001, 29.9187)
//	cmd, err := NewRegisterAgentCommand(agentID, "Sara Ahmed", "sara@example.com", "+201001234567", loc)
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.AgentID
	name     string
	email    string
	phone    string
	location kernel.GeoLocation

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a command to register a new delivery agent.
// Validates that the ID and location are valid and the form fields are present.
// Full field validation (email shape, etc.) happens in the agent aggregate.
func NewRegisterAgentCommand(
	agentID kernel.AgentID,
	name string,
	email string,
	phone string,
	location kernel.GeoLocation,
) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setLocation(location),
	); err != nil {
		return RegisterAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterAgentCommandIsNotConstructed if validation fails.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

// AgentID returns the identifier for the new agent.
func (c RegisterAgentCommand) AgentID() kernel.AgentID {
	return c.agentID
}

// Name returns the agent's display name.
func (c RegisterAgentCommand) Name() string {
	return c.name
}

// Email returns the agent's contact email address.
func (c RegisterAgentCommand) Email() string {
	return c.email
}

// Phone returns the agent's contact phone number.
func (c RegisterAgentCommand) Phone() string {
	return c.phone
}

// Location returns the location picked during registration.
func (c RegisterAgentCommand) Location() kernel.GeoLocation {
	return c.location
}

func (c *RegisterAgentCommand) setAgentID(agentID kernel.AgentID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *RegisterAgentCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAgentCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterAgentCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *RegisterAgentCommand) setLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
