package invitations_services

import (
	"errors"
	"testing"
	"time"

	"tofu-workspaces-backend/internal/features/events"
	invitations_dto "tofu-workspaces-backend/internal/features/invitations/dto"
	invitations_models "tofu-workspaces-backend/internal/features/invitations/models"
	invitations_repositories "tofu-workspaces-backend/internal/features/invitations/repositories"
	users_repositories "tofu-workspaces-backend/internal/features/users/repositories"
	"tofu-workspaces-backend/internal/storage"
	"tofu-workspaces-backend/internal/util/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateInvitation_LinksProvisionalUser(t *testing.T) {
	email := "invitee-" + uuid.New().String()[:8] + "@example.com"

	invitation, err := GetInvitationService().
		CreateInvitation(&invitations_dto.CreateInvitationRequestDTO{Email: email})
	require.NoError(t, err)

	assert.NotEmpty(t, invitation.ActivationCode)
	assert.False(t, invitation.IsConsumed())
	assert.NotEqual(t, uuid.Nil, invitation.LinkedUserID)

	user, err := users_repositories.GetUserRepository().GetUserByID(invitation.LinkedUserID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, email, user.Email)
	assert.False(t, user.IsProvisioned())
	assert.False(t, user.Activated)
}

func Test_CreateInvitation_SameEmailTwice_CreatesSeparateProvisionalUsers(t *testing.T) {
	email := "repeat-" + uuid.New().String()[:8] + "@example.com"

	first, err := GetInvitationService().
		CreateInvitation(&invitations_dto.CreateInvitationRequestDTO{Email: email})
	require.NoError(t, err)

	second, err := GetInvitationService().
		CreateInvitation(&invitations_dto.CreateInvitationRequestDTO{Email: email})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.LinkedUserID, second.LinkedUserID)
}

func Test_ConsumeInvitation_ActivatesUserAndAnnouncesIt(t *testing.T) {
	recorder := &events.Recorder{}
	events.GetEventService().SetPublisher(recorder)
	defer events.GetEventService().SetPublisher(&events.Recorder{})

	invitation, err := GetInvitationService().
		CreateInvitation(&invitations_dto.CreateInvitationRequestDTO{
			Email: "consume-" + uuid.New().String()[:8] + "@example.com",
		})
	require.NoError(t, err)

	consumed, err := GetInvitationService().
		ConsumeInvitation(invitation.ID, &invitations_dto.ConsumeInvitationRequestDTO{
			ActivationCode: invitation.ActivationCode,
			FirstName:      "New",
			LastName:       "Joiner",
		})
	require.NoError(t, err)

	assert.True(t, consumed.IsConsumed())
	require.NotNil(t, consumed.LinkedUser)
	assert.True(t, consumed.LinkedUser.IsProvisioned())
	assert.True(t, consumed.LinkedUser.Activated)
	assert.NotNil(t, consumed.LinkedUser.ActivatedOn)

	var provisioned int
	for _, e := range recorder.Events() {
		if e.RoutingKey == "core.users.user.provisioned" {
			provisioned++
		}
	}
	assert.Equal(t, 1, provisioned)
}

func Test_ConsumeInvitation_WrongCode_FailsPrecondition(t *testing.T) {
	invitation, err := GetInvitationService().
		CreateInvitation(&invitations_dto.CreateInvitationRequestDTO{
			Email: "wrongcode-" + uuid.New().String()[:8] + "@example.com",
		})
	require.NoError(t, err)

	_, err = GetInvitationService().
		ConsumeInvitation(invitation.ID, &invitations_dto.ConsumeInvitationRequestDTO{
			ActivationCode: uuid.New().String(),
			FirstName:      "Wrong",
			LastName:       "Code",
		})
	assert.True(t, errors.Is(err, errs.ErrPreconditionFailed))
}

func Test_ConsumeInvitation_Twice_Conflicts(t *testing.T) {
	invitation, err := GetInvitationService().
		CreateInvitation(&invitations_dto.CreateInvitationRequestDTO{
			Email: "twice-" + uuid.New().String()[:8] + "@example.com",
		})
	require.NoError(t, err)

	request := &invitations_dto.ConsumeInvitationRequestDTO{
		ActivationCode: invitation.ActivationCode,
		FirstName:      "Only",
		LastName:       "Once",
	}

	_, err = GetInvitationService().ConsumeInvitation(invitation.ID, request)
	require.NoError(t, err)

	_, err = GetInvitationService().ConsumeInvitation(invitation.ID, request)
	assert.True(t, errors.Is(err, errs.ErrConflict))
}

func Test_ListPendingInvitations_ExcludesConsumedOnes(t *testing.T) {
	pending, err := GetInvitationService().
		CreateInvitation(&invitations_dto.CreateInvitationRequestDTO{
			Email: "pending-" + uuid.New().String()[:8] + "@example.com",
		})
	require.NoError(t, err)

	consumed, err := GetInvitationService().
		CreateInvitation(&invitations_dto.CreateInvitationRequestDTO{
			Email: "done-" + uuid.New().String()[:8] + "@example.com",
		})
	require.NoError(t, err)

	_, err = GetInvitationService().
		ConsumeInvitation(consumed.ID, &invitations_dto.ConsumeInvitationRequestDTO{
			ActivationCode: consumed.ActivationCode,
			FirstName:      "Already",
			LastName:       "Done",
		})
	require.NoError(t, err)

	list, err := GetInvitationService().ListPendingInvitations()
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(list))
	for _, inv := range list {
		ids = append(ids, inv.ID)
	}
	assert.Contains(t, ids, pending.ID)
	assert.NotContains(t, ids, consumed.ID)
}

func Test_DeleteStaleUnconsumed_OnlyPrunesExpiredPendingOnes(t *testing.T) {
	repo := invitations_repositories.GetInvitationRepository()

	stale, err := GetInvitationService().
		CreateInvitation(&invitations_dto.CreateInvitationRequestDTO{
			Email: "stale-" + uuid.New().String()[:8] + "@example.com",
		})
	require.NoError(t, err)

	fresh, err := GetInvitationService().
		CreateInvitation(&invitations_dto.CreateInvitationRequestDTO{
			Email: "fresh-" + uuid.New().String()[:8] + "@example.com",
		})
	require.NoError(t, err)

	err = storage.GetDb().
		Model(&invitations_models.Invitation{}).
		Where("id = ?", stale.ID).
		Update("created_on", time.Now().UTC().AddDate(0, 0, -60)).Error
	require.NoError(t, err)

	_, err = repo.DeleteStaleUnconsumed(time.Now().UTC().AddDate(0, 0, -30))
	require.NoError(t, err)

	gone, err := repo.GetInvitationByID(stale.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// The stale invitation's provisional user goes with it.
	orphan, err := users_repositories.GetUserRepository().GetUserByID(stale.LinkedUserID)
	require.NoError(t, err)
	assert.Nil(t, orphan)

	kept, err := repo.GetInvitationByID(fresh.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)

	keptUser, err := users_repositories.GetUserRepository().GetUserByID(fresh.LinkedUserID)
	require.NoError(t, err)
	assert.NotNil(t, keptUser)
}
