package access

import (
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"gorm.io/gorm"
)

// Scope narrows a collection query for a principal. Scopes compose with
// gorm's db.Scopes and run before search filters and pagination, so counts
// always reflect the authorized subset.
type Scope func(*gorm.DB) *gorm.DB

// none yields an empty result set. List endpoints never error on missing
// roles; they return nothing.
func none(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

func all(db *gorm.DB) *gorm.DB {
	return db
}

// tenantUsers is a subquery with the ids of every user belonging to the
// principal's condominium. Most entities have no tenant column of their own;
// tenancy is traced through the creating (or owning) user.
func tenantUsers(db *gorm.DB, p Principal) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&models.User{}).
		Select("id").
		Where("condominio_id = ?", p.CondominioID)
}

// creatorInTenant keeps rows whose created_by user belongs to the
// principal's condominium.
func creatorInTenant(p Principal) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_by_id IN (?)", tenantUsers(db, p))
	}
}

// ScopeUsers: managers and the front desk see their condominium's users;
// residents see only themselves.
func (p Principal) ScopeUsers() Scope {
	switch {
	case p.Staff:
		return all
	case p.IsSindico() || p.IsPortaria():
		if p.CondominioID == nil {
			return none
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("condominio_id = ?", p.CondominioID)
		}
	case p.IsMorador():
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("id = ?", p.UserID)
		}
	default:
		return none
	}
}

// ScopeUnidades: managers and the front desk see the tenant's units;
// residents see only their own unit.
func (p Principal) ScopeUnidades() Scope {
	switch {
	case p.Staff:
		return all
	case p.CondominioID == nil:
		return none
	case p.IsSindico() || p.IsPortaria():
		return creatorInTenant(p)
	case p.IsMorador():
		if p.UnidadeID == nil {
			return none
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("id = ?", p.UnidadeID)
		}
	default:
		return none
	}
}

// ScopeVeiculos: tenant-wide for managers and the front desk (traced through
// the owning resident), own vehicles only for residents.
func (p Principal) ScopeVeiculos() Scope {
	switch {
	case p.Staff:
		return all
	case p.CondominioID == nil:
		return none
	case p.IsSindico() || p.IsPortaria():
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("morador_id IN (?)", tenantUsers(db, p))
		}
	case p.IsMorador():
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("morador_id = ?", p.UserID)
		}
	default:
		return none
	}
}

// ScopeVisitantes: the front desk sees the tenant's visitors, residents
// their own. Managers have no visitor surface of their own.
func (p Principal) ScopeVisitantes() Scope {
	switch {
	case p.Staff:
		return all
	case p.IsPortaria():
		if p.CondominioID == nil {
			return none
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("morador_id IN (?)", tenantUsers(db, p))
		}
	case p.IsMorador():
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("morador_id = ?", p.UserID)
		}
	default:
		return none
	}
}

// ScopeEncomendas: managers and the front desk see deliveries registered by
// their condominium's staff; residents only those addressed to their unit.
func (p Principal) ScopeEncomendas() Scope {
	switch {
	case p.Staff:
		return all
	case p.IsSindico() || p.IsPortaria():
		if p.CondominioID == nil {
			return none
		}
		return creatorInTenant(p)
	case p.IsMorador():
		if p.UnidadeID == nil {
			return none
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("unidade_id = ?", p.UnidadeID)
		}
	default:
		return none
	}
}

// ScopeEspacos: every role sees the tenant's spaces.
func (p Principal) ScopeEspacos() Scope {
	switch {
	case p.Staff:
		return all
	case !p.HasAnyRole(), p.CondominioID == nil:
		return none
	default:
		return creatorInTenant(p)
	}
}

// ScopeInventario: tenant match through the item's creator or through the
// parent space's creator, as items are sometimes seeded by staff.
func (p Principal) ScopeInventario() Scope {
	switch {
	case p.Staff:
		return all
	case !p.HasAnyRole(), p.CondominioID == nil:
		return none
	default:
		return func(db *gorm.DB) *gorm.DB {
			espacos := db.Session(&gorm.Session{NewDB: true}).
				Model(&models.Espaco{}).
				Select("id").
				Where("created_by_id IN (?)", tenantUsers(db, p))
			return db.Where(
				"created_by_id IN (?) OR espaco_id IN (?)",
				tenantUsers(db, p), espacos,
			)
		}
	}
}

// ScopeReservas: tenant match through the reservation creator, the space
// creator or the booking resident; residents see only their own bookings.
func (p Principal) ScopeReservas() Scope {
	switch {
	case p.Staff:
		return all
	case !p.HasAnyRole(), p.CondominioID == nil:
		return none
	case p.IsSindico() || p.IsPortaria():
		return func(db *gorm.DB) *gorm.DB {
			espacos := db.Session(&gorm.Session{NewDB: true}).
				Model(&models.Espaco{}).
				Select("id").
				Where("created_by_id IN (?)", tenantUsers(db, p))
			return db.Where(
				"created_by_id IN (?) OR espaco_id IN (?) OR morador_id IN (?)",
				tenantUsers(db, p), espacos, tenantUsers(db, p),
			)
		}
	default:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("morador_id = ?", p.UserID)
		}
	}
}

// ScopeEventos: every role sees the tenant's events.
func (p Principal) ScopeEventos() Scope {
	switch {
	case p.Staff:
		return all
	case !p.HasAnyRole(), p.CondominioID == nil:
		return none
	default:
		return creatorInTenant(p)
	}
}

// ScopeAvisos narrows notices to the principal's tenant and role groups.
// Residents additionally see manager-authored notices for their groups;
// auto-generated delivery notices are hidden from residents with no pending
// delivery (hasPendingEncomenda is computed by the caller).
func (p Principal) ScopeAvisos(hasPendingEncomenda bool) Scope {
	switch {
	case p.Staff && !p.IsSindico():
		return all
	case p.CondominioID == nil:
		return none
	case p.IsSindico():
		return creatorInTenant(p)
	case len(p.Roles) == 0:
		return none
	default:
		roles := p.Roles
		return func(db *gorm.DB) *gorm.DB {
			db = db.Where("grupo IN ?", roles).
				Where("created_by_id IN (?)", tenantUsers(db, p))
			if p.IsMorador() && !hasPendingEncomenda {
				db = db.Where("titulo NOT LIKE ?", "Nova encomenda%")
			}
			return db
		}
	}
}
