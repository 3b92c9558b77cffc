package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
)

// ErrAgentIDIsNotConstructed indicates that an AgentID was not created through
// the NewAgentID constructor. This error is returned when validating a
// zero-value AgentID.
var ErrAgentIDIsNotConstructed = errs.NewValueIsRequiredError("agent ID must be created via NewAgentID")

// AgentID is a value object identifying a delivery agent.
// Agent identifiers are opaque non-empty strings issued by the identity
// system; the domain treats them as atomic values and never inspects their
// structure.
//
// The zero value of AgentID is invalid and must be constructed via NewAgentID.
// AgentID is immutable and safe for concurrent use.
//
// Example:
//
//	agentID, err := kernel.NewAgentID("agent-7f3a")
//	if err != nil {
//	    return fmt.Errorf("invalid agent ID: %w", err)
//	}
//	fmt.Println(agentID.String()) // "agent-7f3a"
type AgentID struct {
	value string
}

// NewAgentID creates an AgentID from its string representation.
// The string must be non-empty after trimming whitespace.
func NewAgentID(s string) (AgentID, error) {
	if strings.TrimSpace(s) == "" {
		return AgentID{}, errs.NewValueIsRequiredError("agentID")
	}
	return AgentID{value: s}, nil
}

// String returns the string representation of the agent identifier.
func (a AgentID) String() string {
	return a.value
}

// IsEqual compares two agent identifiers for equality.
func (a AgentID) IsEqual(other AgentID) bool {
	return a.value == other.value
}

// Validate checks that the AgentID was properly constructed.
// Returns ErrAgentIDIsNotConstructed for the zero value.
func (a AgentID) Validate() error {
	if a.value == "" {
		return ErrAgentIDIsNotConstructed
	}
	return nil
}
