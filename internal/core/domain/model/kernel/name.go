package kernel

import (
	"errors"
	"strings"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrNameIsProfane = errors.New("name contains profanity")

// Name is a display name of a product, menu, menu group or order table.
// A zero Name stands for a missing one and fails Validate.
type Name struct { //nolint:recvcheck //using for validation
	subject Subject
	value   string
	guard   guard.ConstructorGuard
}

// NewName accepts any non-empty string, blank text included.
func NewName(subject Subject, value string) (Name, error) {
	if value == "" {
		return Name{}, errs.NewValueIsRequiredError(subject.Param("name"))
	}
	return Name{subject: subject, value: value, guard: guard.NewConstructorGuard()}, nil
}

// NewNonBlankName additionally rejects names made of whitespace only.
func NewNonBlankName(subject Subject, value string) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return Name{}, errs.NewValueIsRequiredError(subject.Param("name"))
	}
	return NewName(subject, value)
}

// NewCheckedName builds a Name and rejects it when checker reports profanity.
func NewCheckedName(subject Subject, value string, checker ProfanityChecker) (Name, error) {
	if checker == nil {
		return Name{}, errs.NewValueIsRequiredError("profanity checker")
	}
	name, err := NewName(subject, value)
	if err != nil {
		return Name{}, err
	}
	if checker.ContainsProfanity(value) {
		return Name{}, errs.NewValueIsInvalidErrorWithCause(subject.Param("name"), ErrNameIsProfane)
	}
	return name, nil
}

func (n Name) Validate() error {
	return n.guard.Validate(errs.NewValueIsRequiredError(n.subject.Param("name")))
}

func (n Name) Value() string {
	return n.value
}

func (n Name) String() string {
	return n.value
}

// IsEqual compares names by content.
func (n Name) IsEqual(other Name) bool {
	return n.value == other.value
}
