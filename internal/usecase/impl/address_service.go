package impl

import (
	"context"
	"log/slog"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	contactRepo repository.ContactRepository
	addressRepo repository.AddressRepository
	validator   service.Validator
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContactRepo repository.ContactRepository
	AddressRepo repository.AddressRepository
	Validator   service.Validator
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		contactRepo: params.ContactRepo,
		addressRepo: params.AddressRepo,
		validator:   params.Validator,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds an address to the user's contact. A missing contact is a bad request here.
func (srv *addressService) Create(ctx context.Context, user *entity.User, contactID string, input *usecase.AddressInput) (*usecase.AddressOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.WithStack(err)
	}

	var created *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contact, err := findOwnedContact(ctx, repoFactory.ContactRepo(), user, contactID)
		if errors.Is(err, domainerrors.ErrContactNotFound) {
			return errors.Wrap(domainerrors.ErrContactReferenceInvalid, "create address")
		}
		if err != nil {
			return err
		}

		address := &entity.Address{ID: uuid.NewString(), ContactID: contact.ID}
		applyAddressInput(address, input)

		if err := repoFactory.AddressRepo().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
		created = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Address created", slog.String("contactID", contactID), slog.String("addressID", created.ID))

	return usecase.ToAddressOutput(created), nil
}

// Get returns one address of the user's contact.
func (srv *addressService) Get(ctx context.Context, user *entity.User, contactID, addressID string) (*usecase.AddressOutput, error) {
	contact, err := findOwnedContact(ctx, srv.contactRepo, user, contactID)
	if err != nil {
		return nil, err
	}

	address, err := findContactAddress(ctx, srv.addressRepo, contact, addressID)
	if err != nil {
		return nil, err
	}

	return usecase.ToAddressOutput(address), nil
}

// Update replaces every mutable field of the address.
func (srv *addressService) Update(ctx context.Context, user *entity.User, contactID, addressID string, input *usecase.AddressInput) (*usecase.AddressOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.WithStack(err)
	}

	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contact, err := findOwnedContact(ctx, repoFactory.ContactRepo(), user, contactID)
		if err != nil {
			return err
		}

		addressRepo := repoFactory.AddressRepo()
		address, err := findContactAddress(ctx, addressRepo, contact, addressID)
		if err != nil {
			return err
		}

		applyAddressInput(address, input)
		if err := addressRepo.Save(ctx, address); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address deleted during update")
			}

			return errors.Wrap(err, "failed to update address")
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.ToAddressOutput(updated), nil
}

// Delete removes the address from the user's contact.
func (srv *addressService) Delete(ctx context.Context, user *entity.User, contactID, addressID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contact, err := findOwnedContact(ctx, repoFactory.ContactRepo(), user, contactID)
		if err != nil {
			return err
		}

		addressRepo := repoFactory.AddressRepo()
		address, err := findContactAddress(ctx, addressRepo, contact, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.Delete(ctx, address.ID); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address deleted concurrently")
			}

			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
}

// List returns every address of the user's contact.
func (srv *addressService) List(ctx context.Context, user *entity.User, contactID string) ([]*usecase.AddressOutput, error) {
	contact, err := findOwnedContact(ctx, srv.contactRepo, user, contactID)
	if err != nil {
		return nil, err
	}

	addresses, err := srv.addressRepo.FindAllByContact(ctx, contact.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	outputs := make([]*usecase.AddressOutput, 0, len(addresses))
	for _, address := range addresses {
		outputs = append(outputs, usecase.ToAddressOutput(address))
	}

	return outputs, nil
}

func findContactAddress(ctx context.Context, addressRepo repository.AddressRepository, contact *entity.Contact, addressID string) (*entity.Address, error) {
	address, err := addressRepo.FindByContactAndID(ctx, contact.ID, addressID)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "resolve address")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address")
	}

	return address, nil
}

// applyAddressInput overwrites every mutable field of the address.
func applyAddressInput(address *entity.Address, input *usecase.AddressInput) {
	address.Street = input.Street
	address.City = input.City
	address.Province = input.Province
	address.Country = input.Country
	address.PostalCode = input.PostalCode
}
