package securityservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/pkg/randompkg"
)

func TestAppendGeneratesIDAndTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)

	userID := randompkg.String(9)

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, e domain.SecurityEvent) (domain.SecurityEvent, error) {
			require.NotEmpty(t, e.ID)
			require.Equal(t, userID, e.UserID)
			require.Equal(t, domain.ActivityLogin, e.ActivityType)
			require.True(t, e.Success)
			require.WithinDuration(t, time.Now().UTC(), e.CreatedAt, time.Minute)
			return e, nil
		})

	service := New(repo)

	event, err := service.Append(context.Background(), userID, domain.ActivityLogin, "Successful login by jaya", true)
	require.NoError(t, err)
	require.NotEmpty(t, event.ID)
}

func TestActivateProtocol(t *testing.T) {
	userID := randompkg.String(9)

	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo)
	}{
		{
			name: "Inactive",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ProtocolActive(gomock.Any()).Times(1).Return(false, nil)
				repo.EXPECT().SetProtocolActive(gomock.Any(), gomock.Eq(true)).Times(1).Return(nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, e domain.SecurityEvent) (domain.SecurityEvent, error) {
						require.Equal(t, domain.ActivitySecurityProtocol, e.ActivityType)
						require.Equal(t, "Security protocol activated", e.Description)
						require.True(t, e.Success)
						return e, nil
					})
			},
		},
		{
			name: "AlreadyActive",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ProtocolActive(gomock.Any()).Times(1).Return(true, nil)
				// One-way flag: re-activation is a no-op with no event.
				repo.EXPECT().SetProtocolActive(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			require.NoError(t, service.ActivateProtocol(context.Background(), userID))
		})
	}
}

func TestSimulateThreat(t *testing.T) {
	userID := randompkg.String(9)

	testCases := []struct {
		name            string
		protocolActive  bool
		wantSuccess     bool
		wantDescription string
	}{
		{
			name:            "ProtocolInactive",
			protocolActive:  false,
			wantSuccess:     true,
			wantDescription: "Successful phishing hack attempt",
		},
		{
			name:            "ProtocolActive",
			protocolActive:  true,
			wantSuccess:     false,
			wantDescription: "Blocked phishing hack attempt - Security Protocol Active",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			repo.EXPECT().ProtocolActive(gomock.Any()).Times(1).Return(tc.protocolActive, nil)
			repo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				Times(1).
				DoAndReturn(func(_ context.Context, e domain.SecurityEvent) (domain.SecurityEvent, error) {
					require.Equal(t, domain.ActivityHackAttempt, e.ActivityType)
					require.Equal(t, tc.wantDescription, e.Description)
					require.Equal(t, tc.wantSuccess, e.Success)
					return e, nil
				})

			service := New(repo)

			event, err := service.SimulateThreat(context.Background(), userID, "phishing")
			require.NoError(t, err)
			require.Equal(t, tc.wantSuccess, event.Success)
		})
	}
}
