package postgres

import (
	"context"
	"strings"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// contactRepository implements the domain.ContactRepository interface.
type contactRepository struct {
	*crudStore[entity.Contact, model.ContactModel]
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		crudStore: &crudStore[entity.Contact, model.ContactModel]{
			db:         db,
			keyColumn:  "id",
			name:       "contact",
			notFound:   repository.ErrContactNotFound,
			toDomain:   toContactDomain,
			fromDomain: fromContactDomain,
			writeErr:   contactWriteError,
		},
	}
}

// FindByOwnerAndID retrieves a contact only when the username owns it.
func (repo *contactRepository) FindByOwnerAndID(ctx context.Context, username, id string) (*entity.Contact, error) {
	var contactM model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("username = ? AND id = ?", username, id).
		Take(&contactM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by owner")
	}

	return toContactDomain(&contactM), nil
}

// Search counts the owner's matching contacts and loads the requested page ordered by id.
func (repo *contactRepository) Search(
	ctx context.Context,
	username string,
	filter entity.ContactFilter,
	page entity.Pageable,
) ([]*entity.Contact, int64, error) {
	scope := contactSearchScope(username, filter)

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count contacts")
	}

	contacts := make([]*entity.Contact, 0)
	if page.PastEnd(total) {
		return contacts, total, nil
	}

	var contactModels []*model.ContactModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&contactModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search contacts")
	}

	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, total, nil
}

// contactSearchScope restricts a query to the owner's contacts matching every non-empty filter.
func contactSearchScope(username string, filter entity.ContactFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("username = ?", username)

		if filter.Name != "" {
			pattern := containsPattern(filter.Name)
			db = db.Where("(first_name ILIKE ? OR last_name ILIKE ?)", pattern, pattern)
		}
		if filter.Email != "" {
			db = db.Where("email ILIKE ?", containsPattern(filter.Email))
		}
		if filter.Phone != "" {
			db = db.Where("phone LIKE ?", containsPattern(filter.Phone))
		}

		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps value in % after escaping LIKE metacharacters so it matches literally.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func contactWriteError(err error) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrContactAlreadyExists.WrapMessage("contact id unavailable")
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrUnauthenticated.WrapMessage("contact owner does not exist")
	}

	return nil
}

// --- Mapper Functions ---

// toContactDomain converts a GORM ContactModel to a domain Contact entity.
func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
	}
}

// fromContactDomain converts a domain Contact entity to a GORM ContactModel.
func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
	}
}
