// Package menugroup provides MenuGroup, the category a menu is listed under.
package menugroup

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
)

var ErrMenuGroupIsNotConstructed = errors.New("MenuGroup must be created via NewMenuGroup or RestoreMenuGroup")

type MenuGroup struct {
	id            kernel.UUID
	name          kernel.Name
	isConstructed bool
}

// NewMenuGroup creates a menu group. The name must not be blank.
func NewMenuGroup(name string) (*MenuGroup, error) {
	groupName, err := kernel.NewNonBlankName(kernel.SubjectMenuGroup, name)
	if err != nil {
		return nil, err
	}
	return RestoreMenuGroup(kernel.NewUUID(), groupName)
}

func RestoreMenuGroup(id kernel.UUID, name kernel.Name) (*MenuGroup, error) {
	if err := errors.Join(id.ValidateAs("menu_group.id"), name.Validate()); err != nil {
		return nil, err
	}
	return &MenuGroup{id: id, name: name, isConstructed: true}, nil
}

func (g *MenuGroup) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrMenuGroupIsNotConstructed
	}
	return nil
}

func (g *MenuGroup) ID() kernel.UUID {
	return g.id
}

func (g *MenuGroup) Name() kernel.Name {
	return g.name
}
