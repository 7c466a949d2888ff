package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/santiagoprado21/southpark-club-backend/auth"
	auth_mocks "github.com/santiagoprado21/southpark-club-backend/auth/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var adminEmails = []string{"admin@southpark.com"}

func newTestService(t *testing.T) (*gomock.Controller, *auth_mocks.MockUserRepository, *auth.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := auth_mocks.NewMockUserRepository(ctrl)
	return ctrl, repo, auth.NewService(repo, adminEmails)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("existing user", func(t *testing.T) {
		ctrl, repo, service := newTestService(t)
		defer ctrl.Finish()

		stored := auth.User{ID: "user1ID", Name: "user1", Email: "user1@mail.com", Role: auth.RoleClient}
		repo.EXPECT().GetUserByEmail(ctx, "user1@mail.com").Return(stored, nil).Times(1)

		session, err := service.Login(ctx, "user1@mail.com", "secret", "")

		require.Nil(t, err)
		require.NotEmpty(t, session.Token)
		require.Equal(t, stored, session.User)
	})

	t.Run("first login creates the user", func(t *testing.T) {
		ctrl, repo, service := newTestService(t)
		defer ctrl.Finish()

		toInsert := auth.User{Name: "New User", Email: "new@mail.com", Role: auth.RoleClient}
		inserted := toInsert
		inserted.ID = "newID"

		repo.EXPECT().GetUserByEmail(ctx, "new@mail.com").Return(auth.User{}, auth.ErrUserNotFound).Times(1)
		repo.EXPECT().InsertUser(ctx, toInsert).Return(inserted, nil).Times(1)

		session, err := service.Login(ctx, "new@mail.com", "secret", "New User")

		require.Nil(t, err)
		require.Equal(t, inserted, session.User)
	})

	t.Run("admin email gets the admin role", func(t *testing.T) {
		ctrl, repo, service := newTestService(t)
		defer ctrl.Finish()

		toInsert := auth.User{Name: "admin", Email: "admin@southpark.com", Role: auth.RoleAdmin}
		inserted := toInsert
		inserted.ID = "adminID"

		repo.EXPECT().GetUserByEmail(ctx, "admin@southpark.com").Return(auth.User{}, auth.ErrUserNotFound).Times(1)
		repo.EXPECT().InsertUser(ctx, toInsert).Return(inserted, nil).Times(1)

		session, err := service.Login(ctx, "Admin@SouthPark.com", "secret", "")

		require.Nil(t, err)
		require.True(t, session.User.IsAdmin())
	})

	t.Run("name falls back to the email local part", func(t *testing.T) {
		ctrl, repo, service := newTestService(t)
		defer ctrl.Finish()

		toInsert := auth.User{Name: "jane.doe", Email: "jane.doe@mail.com", Role: auth.RoleClient}

		repo.EXPECT().GetUserByEmail(ctx, "jane.doe@mail.com").Return(auth.User{}, auth.ErrUserNotFound).Times(1)
		repo.EXPECT().InsertUser(ctx, toInsert).Return(toInsert, nil).Times(1)

		_, err := service.Login(ctx, "jane.doe@mail.com", "secret", "")

		require.Nil(t, err)
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl, _, service := newTestService(t)
		defer ctrl.Finish()

		_, err := service.Login(ctx, "", "secret", "")
		require.ErrorIs(t, err, auth.ErrValidation)

		_, err = service.Login(ctx, "user1@mail.com", "", "")
		require.ErrorIs(t, err, auth.ErrValidation)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, repo, service := newTestService(t)
		defer ctrl.Finish()

		repo.EXPECT().GetUserByEmail(ctx, "user1@mail.com").Return(auth.User{}, errors.New("repo error")).Times(1)

		_, err := service.Login(ctx, "user1@mail.com", "secret", "")

		require.Error(t, err)
	})
}

func TestSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("token round trip", func(t *testing.T) {
		ctrl, repo, service := newTestService(t)
		defer ctrl.Finish()

		stored := auth.User{ID: "user1ID", Name: "user1", Email: "user1@mail.com", Role: auth.RoleClient}
		repo.EXPECT().GetUserByEmail(ctx, "user1@mail.com").Return(stored, nil).Times(1)

		session, err := service.Login(ctx, "user1@mail.com", "secret", "")
		require.Nil(t, err)

		user, err := service.GetSession(session.Token)
		require.Nil(t, err)
		require.Equal(t, stored, user)
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl, _, service := newTestService(t)
		defer ctrl.Finish()

		_, err := service.GetSession("nope")

		require.ErrorIs(t, err, auth.ErrInvalidSession)
	})

	t.Run("logout invalidates the token", func(t *testing.T) {
		ctrl, repo, service := newTestService(t)
		defer ctrl.Finish()

		stored := auth.User{ID: "user1ID", Email: "user1@mail.com", Role: auth.RoleClient}
		repo.EXPECT().GetUserByEmail(ctx, "user1@mail.com").Return(stored, nil).Times(1)

		session, err := service.Login(ctx, "user1@mail.com", "secret", "")
		require.Nil(t, err)

		service.Logout(session.Token)

		_, err = service.GetSession(session.Token)
		require.ErrorIs(t, err, auth.ErrInvalidSession)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	stored := auth.User{ID: "user1ID", Name: "user1", Email: "user1@mail.com", Role: auth.RoleClient}

	t.Run("success refreshes the session", func(t *testing.T) {
		ctrl, repo, service := newTestService(t)
		defer ctrl.Finish()

		repo.EXPECT().GetUserByEmail(ctx, "user1@mail.com").Return(stored, nil).Times(1)

		session, err := service.Login(ctx, "user1@mail.com", "secret", "")
		require.Nil(t, err)

		name := "User One"
		phone := "555-0101"

		expected := stored
		expected.Name = name
		expected.Phone = phone

		repo.EXPECT().UpdateUser(ctx, expected).Return(nil).Times(1)

		updated, err := service.UpdateProfile(ctx, session.Token, stored, auth.ProfilePatch{Name: &name, Phone: &phone})

		require.Nil(t, err)
		require.Equal(t, expected, updated)

		cached, err := service.GetSession(session.Token)
		require.Nil(t, err)
		require.Equal(t, expected, cached)
	})

	t.Run("empty name", func(t *testing.T) {
		ctrl, _, service := newTestService(t)
		defer ctrl.Finish()

		name := "   "

		_, err := service.UpdateProfile(ctx, "token", stored, auth.ProfilePatch{Name: &name})

		require.ErrorIs(t, err, auth.ErrValidation)
	})
}
