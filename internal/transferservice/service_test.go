package transferservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/engineering-bank/backend/internal/domain"
	"github.com/engineering-bank/backend/pkg/randompkg"
)

func testAccount(id, balance string) domain.Account {
	return domain.Account{
		ID:        id,
		Username:  randompkg.Username(),
		Password:  randompkg.String(8),
		Email:     randompkg.Email(),
		Balance:   balance,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func profileOf(a domain.Account) domain.Profile {
	return domain.Profile{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
	}
}

func TestTransfer(t *testing.T) {
	sender := testAccount("sender-1", "10000")
	receiver := testAccount("receiver-1", "500")

	testCases := []struct {
		name          string
		arg           domain.CreateTransferParams
		buildStubs    func(repo *MockRepo, directory *MockDirectory, sessions *MockSessions, audit *MockAudit)
		checkResponse func(tx domain.Transaction, err error)
	}{
		{
			name: "NoActiveSession",
			arg:  domain.CreateTransferParams{ReceiverID: receiver.ID, Amount: "100"},
			buildStubs: func(repo *MockRepo, directory *MockDirectory, sessions *MockSessions, audit *MockAudit) {
				sessions.EXPECT().Current(gomock.Any()).Times(1).Return(domain.Profile{}, domain.ErrSessionNotFound)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(tx domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrSessionNotFound)
			},
		},
		{
			name: "InvalidAmount",
			arg:  domain.CreateTransferParams{ReceiverID: receiver.ID, Amount: "!@#$"},
			buildStubs: func(repo *MockRepo, directory *MockDirectory, sessions *MockSessions, audit *MockAudit) {
				sessions.EXPECT().Current(gomock.Any()).Times(1).Return(profileOf(sender), nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
				directory.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(tx domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
			},
		},
		{
			name: "NegativeAmount",
			arg:  domain.CreateTransferParams{ReceiverID: receiver.ID, Amount: "-100"},
			buildStubs: func(repo *MockRepo, directory *MockDirectory, sessions *MockSessions, audit *MockAudit) {
				sessions.EXPECT().Current(gomock.Any()).Times(1).Return(profileOf(sender), nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
				directory.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(tx domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrNegativeAmount)
			},
		},
		{
			name: "SelfTransfer",
			arg:  domain.CreateTransferParams{ReceiverID: sender.ID, Amount: "100"},
			buildStubs: func(repo *MockRepo, directory *MockDirectory, sessions *MockSessions, audit *MockAudit) {
				sessions.EXPECT().Current(gomock.Any()).Times(1).Return(profileOf(sender), nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
				directory.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(tx domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrSelfTransfer)
			},
		},
		{
			name: "InsufficientFunds",
			arg:  domain.CreateTransferParams{ReceiverID: receiver.ID, Amount: "20000"},
			buildStubs: func(repo *MockRepo, directory *MockDirectory, sessions *MockSessions, audit *MockAudit) {
				sessions.EXPECT().Current(gomock.Any()).Times(1).Return(profileOf(sender), nil)
				directory.EXPECT().GetByID(gomock.Any(), gomock.Eq(sender.ID)).Times(1).Return(sender, nil)
				// No state change and, deliberately, no security event.
				directory.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				sessions.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
				audit.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(tx domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrInsufficientFunds)
			},
		},
		{
			name: "OK",
			arg:  domain.CreateTransferParams{ReceiverID: receiver.ID, Amount: "2500", Description: "rent"},
			buildStubs: func(repo *MockRepo, directory *MockDirectory, sessions *MockSessions, audit *MockAudit) {
				sessions.EXPECT().Current(gomock.Any()).Times(1).Return(profileOf(sender), nil)
				directory.EXPECT().GetByID(gomock.Any(), gomock.Eq(sender.ID)).Times(1).Return(sender, nil)
				directory.EXPECT().
					UpdateBalance(gomock.Any(), gomock.Eq(sender.ID), gomock.Eq("7500")).
					Times(1).
					Return(domain.Account{}, nil)
				sessions.EXPECT().
					UpdateBalance(gomock.Any(), gomock.Eq(sender.ID), gomock.Eq("7500")).
					Times(1).
					Return(nil)
				directory.EXPECT().GetByID(gomock.Any(), gomock.Eq(receiver.ID)).Times(1).Return(receiver, nil)
				directory.EXPECT().
					UpdateBalance(gomock.Any(), gomock.Eq(receiver.ID), gomock.Eq("3000")).
					Times(1).
					Return(domain.Account{}, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, tx domain.Transaction) (domain.Transaction, error) {
						require.NotEmpty(t, tx.ID)
						require.Equal(t, sender.ID, tx.SenderID)
						require.Equal(t, receiver.ID, tx.ReceiverID)
						require.Equal(t, "2500", tx.Amount)
						require.Equal(t, domain.KindDebit, tx.Kind)
						require.Equal(t, "rent", tx.Description)
						return tx, nil
					})
				audit.EXPECT().
					Append(gomock.Any(), gomock.Eq(sender.ID), gomock.Eq(domain.ActivityTransfer), gomock.Any(), gomock.Eq(true)).
					Times(1)
			},
			checkResponse: func(tx domain.Transaction, err error) {
				require.NoError(t, err)
				require.Equal(t, "2500", tx.Amount)
				require.Equal(t, domain.KindDebit, tx.Kind)
			},
		},
		{
			name: "ExternalReceiverNotCredited",
			arg:  domain.CreateTransferParams{ReceiverID: "external-9", Amount: "100"},
			buildStubs: func(repo *MockRepo, directory *MockDirectory, sessions *MockSessions, audit *MockAudit) {
				sessions.EXPECT().Current(gomock.Any()).Times(1).Return(profileOf(sender), nil)
				directory.EXPECT().GetByID(gomock.Any(), gomock.Eq(sender.ID)).Times(1).Return(sender, nil)
				directory.EXPECT().
					UpdateBalance(gomock.Any(), gomock.Eq(sender.ID), gomock.Eq("9900")).
					Times(1).
					Return(domain.Account{}, nil)
				sessions.EXPECT().UpdateBalance(gomock.Any(), gomock.Eq(sender.ID), gomock.Eq("9900")).Times(1).Return(nil)
				directory.EXPECT().
					GetByID(gomock.Any(), gomock.Eq("external-9")).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(1).
					DoAndReturn(func(_ context.Context, tx domain.Transaction) (domain.Transaction, error) {
						return tx, nil
					})
				audit.EXPECT().
					Append(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1)
			},
			checkResponse: func(tx domain.Transaction, err error) {
				require.NoError(t, err)
				require.Equal(t, "external-9", tx.ReceiverID)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			directory := NewMockDirectory(ctrl)
			sessions := NewMockSessions(ctrl)
			audit := NewMockAudit(ctrl)
			tc.buildStubs(repo, directory, sessions, audit)

			service := New(repo, directory, sessions, audit, 0)

			tx, err := service.Transfer(context.Background(), tc.arg)
			tc.checkResponse(tx, err)
		})
	}
}

func TestHistory(t *testing.T) {
	sender := testAccount("sender-1", "10000")

	transactions := []domain.Transaction{
		{ID: "t2", SenderID: sender.ID, ReceiverID: "b", Amount: "50", Kind: domain.KindDebit},
		{ID: "t1", SenderID: "c", ReceiverID: sender.ID, Amount: "20", Kind: domain.KindDebit},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	sessions := NewMockSessions(ctrl)

	sessions.EXPECT().Current(gomock.Any()).Times(1).Return(profileOf(sender), nil)
	repo.EXPECT().ListForAccount(gomock.Any(), gomock.Eq(sender.ID)).Times(1).Return(transactions, nil)

	service := New(repo, NewMockDirectory(ctrl), sessions, NewMockAudit(ctrl), 0)

	got, err := service.History(context.Background())
	require.NoError(t, err)
	require.Equal(t, transactions, got)
}

func TestHistoryWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := NewMockSessions(ctrl)
	sessions.EXPECT().Current(gomock.Any()).Times(1).Return(domain.Profile{}, domain.ErrSessionNotFound)

	service := New(NewMockRepo(ctrl), NewMockDirectory(ctrl), sessions, NewMockAudit(ctrl), 0)

	_, err := service.History(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}
