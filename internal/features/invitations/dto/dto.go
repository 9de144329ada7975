package invitations_dto

type CreateInvitationRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type ConsumeInvitationRequestDTO struct {
	ActivationCode string `json:"activationCode" binding:"required"`
	FirstName      string `json:"firstName"      binding:"required"`
	LastName       string `json:"lastName"       binding:"required"`
}
