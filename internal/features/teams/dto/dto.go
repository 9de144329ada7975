package teams_dto

import "github.com/google/uuid"

type MemberCreateDTO struct {
	User uuid.UUID `json:"user" binding:"required"`
}

type CreateTeamRequestDTO struct {
	Code    string            `json:"code"    binding:"required,min=1,max=255"`
	Name    string            `json:"name"    binding:"required,min=1,max=255"`
	Members []MemberCreateDTO `json:"members"`
}

type UpdateTeamRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type MemberAssignDTO struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

// AssignTeamRequestDTO carries the complete desired membership. An
// empty list is valid and clears the team.
type AssignTeamRequestDTO struct {
	Members []MemberAssignDTO `json:"members"`
}
