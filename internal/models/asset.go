// internal/models/asset.go
package models

// Tracker assets: the adjacent admin screens (domains, hosting, servers,
// software licenses, integrations, projects, calendar). Plain user-owned CRUD
// rows with no business rules beyond ownership.

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Domain struct {
	BaseModel
	UserID    uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Registrar string          `json:"registrar" gorm:"size:100"`
	ExpiresAt *time.Time      `json:"expires_at"`
	AutoRenew bool            `json:"auto_renew" gorm:"default:false"`
	Cost      decimal.Decimal `json:"cost" gorm:"type:decimal(10,2);default:0"`
	Status    string          `json:"status" gorm:"size:30;default:'active'"`
	Notes     string          `json:"notes" gorm:"type:text"`
}

type HostingAccount struct {
	BaseModel
	UserID      uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Provider    string          `json:"provider" gorm:"size:100;not null"`
	Plan        string          `json:"plan" gorm:"size:100"`
	RenewsAt    *time.Time      `json:"renews_at"`
	MonthlyCost decimal.Decimal `json:"monthly_cost" gorm:"type:decimal(10,2);default:0"`
	Status      string          `json:"status" gorm:"size:30;default:'active'"`
	Notes       string          `json:"notes" gorm:"type:text"`
}

type ServerInstance struct {
	BaseModel
	UserID      uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Name        string          `json:"name" gorm:"size:100;not null"`
	Provider    string          `json:"provider" gorm:"size:100"`
	Region      string          `json:"region" gorm:"size:50"`
	IPAddress   string          `json:"ip_address" gorm:"size:45"`
	MonthlyCost decimal.Decimal `json:"monthly_cost" gorm:"type:decimal(10,2);default:0"`
	Status      string          `json:"status" gorm:"size:30;default:'running'"`
	Notes       string          `json:"notes" gorm:"type:text"`
}

type SoftwareLicense struct {
	BaseModel
	UserID    uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Vendor    string          `json:"vendor" gorm:"size:100"`
	Key       string          `json:"key" gorm:"size:255"`
	Seats     int             `json:"seats" gorm:"default:1"`
	ExpiresAt *time.Time      `json:"expires_at"`
	Cost      decimal.Decimal `json:"cost" gorm:"type:decimal(10,2);default:0"`
	Status    string          `json:"status" gorm:"size:30;default:'active'"`
	Notes     string          `json:"notes" gorm:"type:text"`
}

type Integration struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Name     string    `json:"name" gorm:"size:100;not null"`
	Provider string    `json:"provider" gorm:"size:100"`
	Category string    `json:"category" gorm:"size:50"`
	Enabled  bool      `json:"enabled" gorm:"default:false"`
	Config   string    `json:"config" gorm:"type:text"`
	Notes    string    `json:"notes" gorm:"type:text"`
}

type Project struct {
	BaseModel
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Name        string     `json:"name" gorm:"size:255;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Status      string     `json:"status" gorm:"size:30;default:'planned'"`
	DueDate     *time.Time `json:"due_date"`
	Notes       string     `json:"notes" gorm:"type:text"`
}

type CalendarEvent struct {
	BaseModel
	UserID   uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Title    string     `json:"title" gorm:"size:255;not null"`
	StartsAt time.Time  `json:"starts_at" gorm:"not null;index"`
	EndsAt   *time.Time `json:"ends_at"`
	AllDay   bool       `json:"all_day" gorm:"default:false"`
	Color    string     `json:"color" gorm:"size:20"`
	Notes    string     `json:"notes" gorm:"type:text"`
}

// Accessors used by the generic tracker CRUD in the services package.

func (d *Domain) AssetName() string { return d.Name }

func (d *Domain) SetOwner(id uuid.UUID) { d.UserID = id }

func (h *HostingAccount) AssetName() string { return h.Provider }

func (h *HostingAccount) SetOwner(id uuid.UUID) { h.UserID = id }

func (s *ServerInstance) AssetName() string { return s.Name }

func (s *ServerInstance) SetOwner(id uuid.UUID) { s.UserID = id }

func (l *SoftwareLicense) AssetName() string { return l.Name }

func (l *SoftwareLicense) SetOwner(id uuid.UUID) { l.UserID = id }

func (i *Integration) AssetName() string { return i.Name }

func (i *Integration) SetOwner(id uuid.UUID) { i.UserID = id }

func (p *Project) AssetName() string { return p.Name }

func (p *Project) SetOwner(id uuid.UUID) { p.UserID = id }

func (e *CalendarEvent) AssetName() string { return e.Title }

func (e *CalendarEvent) SetOwner(id uuid.UUID) { e.UserID = id }
