// Package access implements tenant and role isolation. A Principal is built
// once per request from the authenticated user's claims; its scope methods
// narrow entity queries to the rows the principal may see, and are always
// applied before search filters and pagination.
package access

import (
	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

// Principal describes the caller for authorization purposes. It is computed
// at authentication time; nothing downstream re-reads groups or sessions.
type Principal struct {
	UserID       uuid.UUID
	Roles        []models.Role
	Staff        bool
	CondominioID *uuid.UUID
	UnidadeID    *uuid.UUID
}

// HasRole reports whether the principal carries the given role tag.
func (p Principal) HasRole(role models.Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p Principal) IsSindico() bool  { return p.HasRole(models.RoleSindico) }
func (p Principal) IsPortaria() bool { return p.HasRole(models.RolePortaria) }
func (p Principal) IsMorador() bool  { return p.HasRole(models.RoleMorador) }

// HasAnyRole reports whether the principal has any role at all (staff counts).
func (p Principal) HasAnyRole() bool {
	return p.Staff || len(p.Roles) > 0
}

// CanManageEncomendas: front desk registers and updates deliveries.
func (p Principal) CanManageEncomendas() bool {
	return p.Staff || p.IsPortaria()
}

// CanManageVisitantes: residents register their own visitors; the front desk
// records entry/exit.
func (p Principal) CanManageVisitantes() bool {
	return p.Staff || p.IsPortaria() || p.IsMorador()
}

// CanManageEspacos: only managers administer spaces, inventory and notices.
func (p Principal) CanManageEspacos() bool {
	return p.Staff || p.IsSindico()
}

// CanManageUnidades: units are created and edited by managers.
func (p Principal) CanManageUnidades() bool {
	return p.Staff || p.IsSindico()
}

// CanCreateReserva: residents book for themselves, managers for anyone.
func (p Principal) CanCreateReserva() bool {
	return p.Staff || p.IsSindico() || p.IsMorador()
}

// CanOwnVeiculo reports whether a user may own vehicles (residents and
// managers only; the front desk never owns registry vehicles).
func CanOwnVeiculo(u *models.User) bool {
	return u.HasRole(models.RoleMorador) || u.HasRole(models.RoleSindico)
}

// SameTenant reports whether the principal and the given tenant id refer to
// the same condominium. Staff always passes.
func (p Principal) SameTenant(condominioID *uuid.UUID) bool {
	if p.Staff {
		return true
	}
	if p.CondominioID == nil || condominioID == nil {
		return false
	}
	return *p.CondominioID == *condominioID
}
