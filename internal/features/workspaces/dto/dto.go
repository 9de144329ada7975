package workspaces_dto

import "github.com/google/uuid"

// AdminDescriptorDTO carries the inline admin user supplied with a
// workspace creation request. Email is required only when the user does
// not exist yet; that rule is enforced by the provisioning cascade, not
// by binding.
type AdminDescriptorDTO struct {
	ID        uuid.UUID `json:"id"        binding:"required"`
	Email     string    `json:"email"     binding:"omitempty,email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type CreateWorkspaceRequestDTO struct {
	Name  string              `json:"name"  binding:"required,min=1,max=255"`
	Admin *AdminDescriptorDTO `json:"admin" binding:"required"`
}

type UpdateWorkspaceRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// SearchWorkspacesRequestDTO is the opaque search filter. Absent fields
// do not constrain the listing.
type SearchWorkspacesRequestDTO struct {
	Name    *string `json:"name"`
	Enabled *bool   `json:"enabled"`
}
