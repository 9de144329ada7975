package invitations_repositories

var invitationRepository = &InvitationRepository{}

func GetInvitationRepository() *InvitationRepository {
	return invitationRepository
}
