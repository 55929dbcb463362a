package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	*crudStore[entity.Address, model.AddressModel]
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		crudStore: &crudStore[entity.Address, model.AddressModel]{
			db:         db,
			keyColumn:  "id",
			name:       "address",
			notFound:   repository.ErrAddressNotFound,
			toDomain:   toAddressDomain,
			fromDomain: fromAddressDomain,
			writeErr:   addressWriteError,
		},
	}
}

// FindByContactAndID retrieves an address only when it belongs to the contact.
func (repo *addressRepository) FindByContactAndID(ctx context.Context, contactID, id string) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("contact_id = ? AND id = ?", contactID, id).
		Take(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by contact")
	}

	return toAddressDomain(&addressM), nil
}

// FindAllByContact retrieves every address of the contact ordered by id.
func (repo *addressRepository) FindAllByContact(ctx context.Context, contactID string) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("id ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by contact")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// DeleteAllByContact removes the contact's addresses.
func (repo *addressRepository) DeleteAllByContact(ctx context.Context, contactID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete addresses of contact")
	}

	return result.RowsAffected, nil
}

func addressWriteError(err error) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrContactReferenceInvalid.WrapMessage("address references a missing contact")
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		ContactID:  data.ContactID,
		Street:     data.Street,
		City:       data.City,
		Province:   data.Province,
		Country:    data.Country,
		PostalCode: data.PostalCode,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		ContactID:  data.ContactID,
		Street:     data.Street,
		City:       data.City,
		Province:   data.Province,
		Country:    data.Country,
		PostalCode: data.PostalCode,
	}
}
