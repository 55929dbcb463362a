package impl

import (
	"context"
	"log/slog"

	"contacts/config"
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

const fallbackPageSize = 10

// contactService implements the ContactUsecase interface.
type contactService struct {
	txManager       repository.TransactionManager
	contactRepo     repository.ContactRepository
	validator       service.Validator
	qrcodeService   service.QRCodeService
	defaultPageSize int
	logger          *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ContactRepo   repository.ContactRepository
	Validator     service.Validator
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	pageSize := fallbackPageSize
	if params.Config != nil && params.Config.Search != nil && params.Config.Search.DefaultPageSize > 0 {
		pageSize = params.Config.Search.DefaultPageSize
	}

	return &contactService{
		txManager:       params.TxManager,
		contactRepo:     params.ContactRepo,
		validator:       params.Validator,
		qrcodeService:   params.QRCodeService,
		defaultPageSize: pageSize,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new contact owned by the user.
func (srv *contactService) Create(ctx context.Context, user *entity.User, input *usecase.CreateContactInput) (*usecase.ContactOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.WithStack(err)
	}

	contact := &entity.Contact{
		ID:        input.ID,
		Username:  user.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.ContactRepo().Create(ctx, contact), "failed to create contact")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Contact created", slog.String("username", user.Username), slog.String("contactID", contact.ID))

	return usecase.ToContactOutput(contact), nil
}

// Get returns one of the user's contacts.
func (srv *contactService) Get(ctx context.Context, user *entity.User, contactID string) (*usecase.ContactOutput, error) {
	contact, err := findOwnedContact(ctx, srv.contactRepo, user, contactID)
	if err != nil {
		return nil, err
	}

	return usecase.ToContactOutput(contact), nil
}

// Update replaces every mutable field of the user's contact.
func (srv *contactService) Update(ctx context.Context, user *entity.User, contactID string, input *usecase.UpdateContactInput) (*usecase.ContactOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.WithStack(err)
	}

	var updated *entity.Contact
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.ContactRepo()

		contact, err := findOwnedContact(ctx, contactRepo, user, contactID)
		if err != nil {
			return err
		}

		contact.FirstName = input.FirstName
		contact.LastName = input.LastName
		contact.Email = input.Email
		contact.Phone = input.Phone

		if err := contactRepo.Save(ctx, contact); err != nil {
			if errors.Is(err, repository.ErrContactNotFound) {
				return errors.Wrap(domainerrors.ErrContactNotFound, "contact deleted during update")
			}

			return errors.Wrap(err, "failed to update contact")
		}
		updated = contact

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.ToContactOutput(updated), nil
}

// Delete removes the user's contact together with its addresses.
func (srv *contactService) Delete(ctx context.Context, user *entity.User, contactID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.ContactRepo()

		contact, err := findOwnedContact(ctx, contactRepo, user, contactID)
		if err != nil {
			return err
		}

		removed, err := repoFactory.AddressRepo().DeleteAllByContact(ctx, contact.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete contact addresses")
		}

		if err := contactRepo.Delete(ctx, contact.ID); err != nil {
			if errors.Is(err, repository.ErrContactNotFound) {
				return errors.Wrap(domainerrors.ErrContactNotFound, "contact deleted concurrently")
			}

			return errors.Wrap(err, "failed to delete contact")
		}

		srv.log(ctx).Debug("Contact deleted",
			slog.String("username", user.Username),
			slog.String("contactID", contact.ID),
			slog.Int64("addressesRemoved", removed),
		)

		return nil
	})
}

// Search returns one page of the user's contacts matching the filters.
func (srv *contactService) Search(ctx context.Context, user *entity.User, input *usecase.SearchContactInput) (*usecase.ContactPage, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.WithStack(err)
	}

	pageable := entity.Pageable{Page: 0, Size: srv.defaultPageSize}
	if input.Page != nil {
		pageable.Page = *input.Page
	}
	if input.Size != nil {
		pageable.Size = *input.Size
	}

	filter := entity.ContactFilter{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	contacts, total, err := srv.contactRepo.Search(ctx, user.Username, filter, pageable)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search contacts")
	}

	items := make([]*usecase.ContactOutput, 0, len(contacts))
	for _, contact := range contacts {
		items = append(items, usecase.ToContactOutput(contact))
	}

	return &usecase.ContactPage{
		Items: items,
		Paging: usecase.PagingOutput{
			CurrentPage: pageable.Page,
			TotalPage:   entity.TotalPages(total, pageable.Size),
			Size:        pageable.Size,
		},
	}, nil
}

// QRCode renders the user's contact as a vCard QR code image.
func (srv *contactService) QRCode(ctx context.Context, user *entity.User, contactID string) ([]byte, error) {
	contact, err := findOwnedContact(ctx, srv.contactRepo, user, contactID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateContactQR(contact)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render contact QR code")
	}

	return png, nil
}

// findOwnedContact resolves a contact scoped to the user. A contact owned by anyone
// else is reported exactly like a missing one.
func findOwnedContact(ctx context.Context, contactRepo repository.ContactRepository, user *entity.User, contactID string) (*entity.Contact, error) {
	contact, err := contactRepo.FindByOwnerAndID(ctx, user.Username, contactID)
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, errors.Wrap(domainerrors.ErrContactNotFound, "resolve contact")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find contact")
	}

	return contact, nil
}
