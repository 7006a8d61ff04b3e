package models

type UserRole string

const (
	RoleOwner    UserRole = "OWNER"
	RoleProvider UserRole = "PROVIDER"
	RoleBoth     UserRole = "BOTH"
)

// ValidUserRole reports whether role is one of the wire-contract role literals.
func ValidUserRole(role UserRole) bool {
	switch role {
	case RoleOwner, RoleProvider, RoleBoth:
		return true
	}
	return false
}

type User struct {
	BaseUUIDModel
	Email        string   `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"column:password;type:text"      json:"-"`
	Name         string   `gorm:"type:text;not null"             json:"name"`
	Phone        *string  `gorm:"type:text"                      json:"phone,omitempty"`
	Location     *string  `gorm:"type:text"                      json:"location,omitempty"`
	Role         UserRole `gorm:"type:text;default:OWNER"        json:"role"`

	Pets            []Pet            `gorm:"foreignKey:OwnerID"  json:"pets,omitempty"`
	ProviderProfile *ProviderProfile `gorm:"foreignKey:UserID"   json:"providerProfile,omitempty"`
}

// UserPublicView is the account owner's own shape, returned from the auth
// endpoints and the self-update. The password hash is never part of any
// response payload.
type UserPublicView struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Phone    *string  `json:"phone,omitempty"`
	Location *string  `json:"location,omitempty"`
	Role     UserRole `json:"role"`
}

func (u *User) ToPublicView() UserPublicView {
	return UserPublicView{
		ID:       u.ID.String(),
		Email:    u.Email,
		Name:     u.Name,
		Phone:    u.Phone,
		Location: u.Location,
		Role:     u.Role,
	}
}

// UserProfileView is what other authenticated users see. Contact details
// stay private to the account owner.
type UserProfileView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location *string  `json:"location,omitempty"`
	Role     UserRole `json:"role"`
}

func (u *User) ToProfileView() UserProfileView {
	return UserProfileView{
		ID:       u.ID.String(),
		Name:     u.Name,
		Location: u.Location,
		Role:     u.Role,
	}
}

// UserSummary is the joined shape embedded in provider and booking responses.
type UserSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
}

func (u *User) ToSummary() UserSummary {
	return UserSummary{
		ID:       u.ID.String(),
		Name:     u.Name,
		Location: u.Location,
	}
}
