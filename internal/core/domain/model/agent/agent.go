// Package agent provides the delivery agent aggregate for the fulfillment service.
// Agents are the workers responsible for fulfilling orders; they register with
// a name, contact details, and their current location, and are referenced by
// orders through their AgentID.
package agent

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for agent operations.
var (
	// ErrNameIsRequired is returned when attempting to register an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsInvalid is returned when the email address is missing or malformed.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrPhoneIsRequired is returned when attempting to register an agent without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
)

// Agent represents a registered delivery agent.
// It is an aggregate root that manages the agent's identity and contact
// details. Orders reference agents by AgentID; authorization for status
// updates is decided by comparing that reference, not by loading the agent.
//
// Business rules:
//   - Agent must have a valid ID, non-empty name and phone, and a well-formed email
//   - The registration location must be valid geographic coordinates
type Agent struct {
	// id uniquely identifies the agent
	id kernel.AgentID
	// name is the agent's display name
	name string
	// email is the agent's contact email address
	email string
	// phone is the agent's contact phone number
	phone string
	// location is where the agent registered from
	location kernel.GeoLocation
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewAgent creates a new Agent with the specified registration details.
// This is the only way to create a valid Agent instance; all parameters are
// validated and the combined validation errors are returned via errors.Join.
func NewAgent(
	id kernel.AgentID,
	name string,
	email string,
	phone string,
	location kernel.GeoLocation,
) (*Agent, error) {
	a := &Agent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setPhone(phone),
		a.setLocation(location),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an Agent from its persisted state.
// Used by repositories when loading aggregates.
func RestoreAgent(
	id kernel.AgentID,
	name string,
	email string,
	phone string,
	location kernel.GeoLocation,
) (*Agent, error) {
	return NewAgent(id, name, email, phone, location)
}

// Validate ensures the Agent instance was properly constructed.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by their identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's identifier.
func (a *Agent) ID() kernel.AgentID {
	return a.id
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// Email returns the agent's contact email address.
func (a *Agent) Email() string {
	return a.email
}

// Phone returns the agent's contact phone number.
func (a *Agent) Phone() string {
	return a.phone
}

// Location returns where the agent registered from.
func (a *Agent) Location() kernel.GeoLocation {
	return a.location
}

func (a *Agent) setID(id kernel.AgentID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Agent) setEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrEmailIsInvalid
	}
	a.email = email
	return nil
}

func (a *Agent) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneIsRequired
	}
	a.phone = phone
	return nil
}

func (a *Agent) setLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
