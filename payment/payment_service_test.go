package payment_test

import (
	"context"
	"testing"

	"github.com/santiagoprado21/southpark-club-backend/auth"
	"github.com/santiagoprado21/southpark-club-backend/payment"
	pay_mocks "github.com/santiagoprado21/southpark-club-backend/payment/mocks"
	rsv "github.com/santiagoprado21/southpark-club-backend/reservation"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var owner = auth.User{ID: "user1ID", Name: "user1", Email: "user1@mail.com", Role: auth.RoleClient}
var admin = auth.User{ID: "adminID", Name: "admin", Email: "admin@southpark.com", Role: auth.RoleAdmin}

// A $40 reservation with the 30% deposit policy: $12 down, $28 balance.
var unpaid = rsv.Reservation{
	ID:                "res1",
	SportName:         "Pádel",
	UserID:            owner.ID,
	Date:              "2030-06-01",
	Time:              "18:00",
	Price:             40,
	Status:            rsv.StatusConfirmed,
	PaymentStatus:     rsv.PaymentPending,
	PaymentPercentage: 30,
}

type testDeps struct {
	repo         *pay_mocks.MockPaymentRepository
	reservations *pay_mocks.MockReservationStore
	notifier     *pay_mocks.MockNotifier
	service      *payment.Service
	ctx          context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := pay_mocks.NewMockPaymentRepository(ctrl)
	reservations := pay_mocks.NewMockReservationStore(ctrl)
	notifier := pay_mocks.NewMockNotifier(ctrl)
	svc := payment.NewService(repo, reservations, notifier)

	return ctrl, testDeps{
		repo: repo, reservations: reservations, notifier: notifier,
		service: svc, ctx: context.Background(),
	}
}

func TestDepositAmount(t *testing.T) {
	require.Equal(t, 12.0, payment.DepositAmount(40, 30))
	require.Equal(t, 8.0, payment.DepositAmount(25, 30))
	require.Equal(t, 0.0, payment.DepositAmount(0, 30))
}

func TestSubmitPayment(t *testing.T) {

	t.Run("deposit", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(unpaid, nil).Times(1)
		deps.repo.EXPECT().InsertPayment(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p payment.Payment) (payment.Payment, error) {
				p.ID = "pay1"
				return p, nil
			}).Times(1)
		deps.reservations.EXPECT().SetPaymentState(deps.ctx, "res1", rsv.PaymentPartial, 12.0, rsv.StatusConfirmed).Return(nil).Times(1)
		deps.notifier.EXPECT().Notify(deps.ctx, owner.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		captured, err := deps.service.SubmitPayment(deps.ctx, "res1", payment.TypeReservation, owner)

		require.Nil(t, err)
		require.Equal(t, 12.0, captured.Amount)
		require.Equal(t, payment.TypeReservation, captured.Type)
		require.Equal(t, payment.StatusCompleted, captured.Status)
		require.Contains(t, captured.Receipt, "REC-")
	})

	t.Run("balance after deposit", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		partial := unpaid
		partial.PaymentStatus = rsv.PaymentPartial
		partial.PaymentAmount = 12

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(partial, nil).Times(1)
		deps.repo.EXPECT().InsertPayment(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p payment.Payment) (payment.Payment, error) {
				return p, nil
			}).Times(1)
		deps.reservations.EXPECT().SetPaymentState(deps.ctx, "res1", rsv.PaymentPaid, 40.0, rsv.StatusConfirmed).Return(nil).Times(1)
		deps.notifier.EXPECT().Notify(deps.ctx, owner.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		captured, err := deps.service.SubmitPayment(deps.ctx, "res1", payment.TypeFullPayment, owner)

		require.Nil(t, err)
		require.Equal(t, 28.0, captured.Amount)
	})

	t.Run("full payment without deposit", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(unpaid, nil).Times(1)
		deps.repo.EXPECT().InsertPayment(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p payment.Payment) (payment.Payment, error) {
				return p, nil
			}).Times(1)
		deps.reservations.EXPECT().SetPaymentState(deps.ctx, "res1", rsv.PaymentPaid, 40.0, rsv.StatusConfirmed).Return(nil).Times(1)
		deps.notifier.EXPECT().Notify(deps.ctx, owner.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		captured, err := deps.service.SubmitPayment(deps.ctx, "res1", payment.TypeFullPayment, owner)

		require.Nil(t, err)
		require.Equal(t, 40.0, captured.Amount)
	})

	t.Run("admin can pay on behalf of the owner", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(unpaid, nil).Times(1)
		deps.repo.EXPECT().InsertPayment(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p payment.Payment) (payment.Payment, error) {
				return p, nil
			}).Times(1)
		deps.reservations.EXPECT().SetPaymentState(deps.ctx, "res1", rsv.PaymentPartial, 12.0, rsv.StatusConfirmed).Return(nil).Times(1)
		deps.notifier.EXPECT().Notify(deps.ctx, owner.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := deps.service.SubmitPayment(deps.ctx, "res1", payment.TypeReservation, admin)

		require.Nil(t, err)
	})

	t.Run("not the owner", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		other := auth.User{ID: "someoneElse", Role: auth.RoleClient}

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(unpaid, nil).Times(1)
		deps.repo.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.SubmitPayment(deps.ctx, "res1", payment.TypeReservation, other)

		require.ErrorIs(t, err, rsv.ErrNotAllowed)
	})

	t.Run("cancelled reservation", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		cancelled := unpaid
		cancelled.Status = rsv.StatusCancelled

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(cancelled, nil).Times(1)
		deps.repo.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.SubmitPayment(deps.ctx, "res1", payment.TypeReservation, owner)

		require.ErrorIs(t, err, rsv.ErrInvalidReservationState)
	})

	t.Run("deposit already paid", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		partial := unpaid
		partial.PaymentStatus = rsv.PaymentPartial
		partial.PaymentAmount = 12

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(partial, nil).Times(1)
		deps.repo.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.SubmitPayment(deps.ctx, "res1", payment.TypeReservation, owner)

		require.ErrorIs(t, err, payment.ErrAlreadySettled)
	})

	t.Run("already settled in full", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		paid := unpaid
		paid.PaymentStatus = rsv.PaymentPaid
		paid.PaymentAmount = 40

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(paid, nil).Times(1)
		deps.repo.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.SubmitPayment(deps.ctx, "res1", payment.TypeFullPayment, owner)

		require.ErrorIs(t, err, payment.ErrAlreadySettled)
	})

	t.Run("unknown payment type", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(unpaid, nil).Times(1)
		deps.repo.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.SubmitPayment(deps.ctx, "res1", "cash", owner)

		require.ErrorIs(t, err, payment.ErrInvalidPaymentType)
	})
}

func TestRefundReservation(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		paid := unpaid
		paid.PaymentStatus = rsv.PaymentPartial
		paid.PaymentAmount = 12

		deps.repo.EXPECT().InsertPayment(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p payment.Payment) (payment.Payment, error) {
				require.Equal(t, payment.TypeRefund, p.Type)
				require.Equal(t, 12.0, p.Amount)
				require.Equal(t, "res1", p.ReservationID)
				return p, nil
			}).Times(1)

		err := deps.service.RefundReservation(deps.ctx, paid)

		require.Nil(t, err)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().InsertPayment(deps.ctx, gomock.Any()).
			Return(payment.Payment{}, context.DeadlineExceeded).Times(1)

		err := deps.service.RefundReservation(deps.ctx, unpaid)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to record refund")
	})
}

func TestFindPaymentsPerReservation(t *testing.T) {
	payments := []payment.Payment{{ID: "pay1", ReservationID: "res1", Amount: 12}}

	t.Run("owner", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(unpaid, nil).Times(1)
		deps.repo.EXPECT().GetPaymentsPerReservation(deps.ctx, "res1").Return(payments, nil).Times(1)

		got, err := deps.service.FindPaymentsPerReservation(deps.ctx, "res1", owner)

		require.Nil(t, err)
		require.Equal(t, payments, got)
	})

	t.Run("admin", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(unpaid, nil).Times(1)
		deps.repo.EXPECT().GetPaymentsPerReservation(deps.ctx, "res1").Return(payments, nil).Times(1)

		_, err := deps.service.FindPaymentsPerReservation(deps.ctx, "res1", admin)

		require.Nil(t, err)
	})

	t.Run("not the owner", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		other := auth.User{ID: "someoneElse", Role: auth.RoleClient}

		deps.reservations.EXPECT().GetReservationByID(deps.ctx, "res1").Return(unpaid, nil).Times(1)
		deps.repo.EXPECT().GetPaymentsPerReservation(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.FindPaymentsPerReservation(deps.ctx, "res1", other)

		require.ErrorIs(t, err, rsv.ErrNotAllowed)
	})
}
