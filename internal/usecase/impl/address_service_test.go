package impl

import (
	"context"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	mockRepo "contacts/internal/mocks/repository"
	mockSvc "contacts/internal/mocks/service"
	"contacts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixture struct {
	srv         usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	contactRepo *mockRepo.MockContactRepository
	addressRepo *mockRepo.MockAddressRepository
	repos       *testRepos
	validator   *mockSvc.MockValidator
}

func newAddressServiceFixture(t *testing.T) *addressServiceFixture {
	t.Helper()

	f := &addressServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		contactRepo: mockRepo.NewMockContactRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		repos:       newTestRepos(t),
		validator:   mockSvc.NewMockValidator(t),
	}
	f.srv = NewAddressService(AddressServiceParams{
		TxManager:   f.txManager,
		ContactRepo: f.contactRepo,
		AddressRepo: f.addressRepo,
		Validator:   f.validator,
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestAddressService_Create(t *testing.T) {
	ctx := context.Background()
	input := &usecase.AddressInput{Street: "Jalan", City: "Jakarta", Province: "DKI", Country: "Indonesia", PostalCode: "12345"}

	t.Run("attaches address to contact", func(t *testing.T) {
		f := newAddressServiceFixture(t)
		f.validator.EXPECT().Validate(input).Return(nil)
		expectTransaction(t, f.txManager, f.repos)
		f.repos.contacts.EXPECT().FindByOwnerAndID(ctx, "alice", "c-1").Return(&entity.Contact{ID: "c-1", Username: "alice"}, nil)

		var stored *entity.Address
		f.repos.addresses.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).
			Run(func(_ context.Context, a *entity.Address) { stored = a }).
			Return(nil)

		out, err := f.srv.Create(ctx, alice, "c-1", input)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "c-1", stored.ContactID)
		assert.NotEmpty(t, out.ID)
		assert.Equal(t, "Indonesia", out.Country)
		assert.Equal(t, "12345", out.PostalCode)
	})

	t.Run("missing contact is a bad reference", func(t *testing.T) {
		f := newAddressServiceFixture(t)
		f.validator.EXPECT().Validate(input).Return(nil)
		expectTransaction(t, f.txManager, f.repos)
		f.repos.contacts.EXPECT().FindByOwnerAndID(ctx, "bob", "c-1").Return(nil, repository.ErrContactNotFound)

		_, err := f.srv.Create(ctx, bob, "c-1", input)

		require.ErrorIs(t, err, domainerrors.ErrContactReferenceInvalid)
		assert.NotErrorIs(t, err, domainerrors.ErrContactNotFound)
	})

	t.Run("country required", func(t *testing.T) {
		f := newAddressServiceFixture(t)
		bad := &usecase.AddressInput{City: "Jakarta"}
		f.validator.EXPECT().Validate(bad).Return(domainerrors.ErrValidationFailed.WithDetails("country is required"))

		_, err := f.srv.Create(ctx, alice, "c-1", bad)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAddressService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		f := newAddressServiceFixture(t)
		f.contactRepo.EXPECT().FindByOwnerAndID(ctx, "alice", "c-1").Return(&entity.Contact{ID: "c-1"}, nil)
		f.addressRepo.EXPECT().FindByContactAndID(ctx, "c-1", "a-1").
			Return(&entity.Address{ID: "a-1", ContactID: "c-1", Country: "Indonesia"}, nil)

		out, err := f.srv.Get(ctx, alice, "c-1", "a-1")

		require.NoError(t, err)
		assert.Equal(t, &usecase.AddressOutput{ID: "a-1", Country: "Indonesia"}, out)
	})

	t.Run("contact missing is not found", func(t *testing.T) {
		f := newAddressServiceFixture(t)
		f.contactRepo.EXPECT().FindByOwnerAndID(ctx, "bob", "c-1").Return(nil, repository.ErrContactNotFound)

		_, err := f.srv.Get(ctx, bob, "c-1", "a-1")

		require.ErrorIs(t, err, domainerrors.ErrContactNotFound)
	})

	t.Run("address of another contact", func(t *testing.T) {
		f := newAddressServiceFixture(t)
		f.contactRepo.EXPECT().FindByOwnerAndID(ctx, "alice", "c-2").Return(&entity.Contact{ID: "c-2"}, nil)
		f.addressRepo.EXPECT().FindByContactAndID(ctx, "c-2", "a-1").Return(nil, repository.ErrAddressNotFound)

		_, err := f.srv.Get(ctx, alice, "c-2", "a-1")

		require.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	})
}

func TestAddressService_Update(t *testing.T) {
	ctx := context.Background()
	input := &usecase.AddressInput{Street: "Baru", Country: "Singapore"}

	f := newAddressServiceFixture(t)
	f.validator.EXPECT().Validate(input).Return(nil)
	expectTransaction(t, f.txManager, f.repos)
	f.repos.contacts.EXPECT().FindByOwnerAndID(ctx, "alice", "c-1").Return(&entity.Contact{ID: "c-1"}, nil)
	f.repos.addresses.EXPECT().FindByContactAndID(ctx, "c-1", "a-1").
		Return(&entity.Address{ID: "a-1", ContactID: "c-1", City: "Jakarta", Country: "Indonesia"}, nil)
	f.repos.addresses.EXPECT().Save(ctx, &entity.Address{ID: "a-1", ContactID: "c-1", Street: "Baru", Country: "Singapore"}).Return(nil)

	out, err := f.srv.Update(ctx, alice, "c-1", "a-1", input)

	require.NoError(t, err)
	assert.Equal(t, "Singapore", out.Country)
	assert.Empty(t, out.City)
}

func TestAddressService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		f := newAddressServiceFixture(t)
		expectTransaction(t, f.txManager, f.repos)
		f.repos.contacts.EXPECT().FindByOwnerAndID(ctx, "alice", "c-1").Return(&entity.Contact{ID: "c-1"}, nil)
		f.repos.addresses.EXPECT().FindByContactAndID(ctx, "c-1", "a-1").Return(&entity.Address{ID: "a-1", ContactID: "c-1"}, nil)
		f.repos.addresses.EXPECT().Delete(ctx, "a-1").Return(nil)

		require.NoError(t, f.srv.Delete(ctx, alice, "c-1", "a-1"))
	})

	t.Run("already gone", func(t *testing.T) {
		f := newAddressServiceFixture(t)
		expectTransaction(t, f.txManager, f.repos)
		f.repos.contacts.EXPECT().FindByOwnerAndID(ctx, "alice", "c-1").Return(&entity.Contact{ID: "c-1"}, nil)
		f.repos.addresses.EXPECT().FindByContactAndID(ctx, "c-1", "a-1").Return(nil, repository.ErrAddressNotFound)

		err := f.srv.Delete(ctx, alice, "c-1", "a-1")

		require.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	})
}

func TestAddressService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("lists in repository order", func(t *testing.T) {
		f := newAddressServiceFixture(t)
		f.contactRepo.EXPECT().FindByOwnerAndID(ctx, "alice", "c-1").Return(&entity.Contact{ID: "c-1"}, nil)
		f.addressRepo.EXPECT().FindAllByContact(ctx, "c-1").Return([]*entity.Address{
			{ID: "a-1", ContactID: "c-1", Country: "Indonesia"},
			{ID: "a-2", ContactID: "c-1", Country: "Malaysia"},
		}, nil)

		out, err := f.srv.List(ctx, alice, "c-1")

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "a-1", out[0].ID)
		assert.Equal(t, "a-2", out[1].ID)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		f := newAddressServiceFixture(t)
		f.contactRepo.EXPECT().FindByOwnerAndID(ctx, "alice", "c-1").Return(&entity.Contact{ID: "c-1"}, nil)
		f.addressRepo.EXPECT().FindAllByContact(ctx, "c-1").Return([]*entity.Address{}, nil)

		out, err := f.srv.List(ctx, alice, "c-1")

		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}
