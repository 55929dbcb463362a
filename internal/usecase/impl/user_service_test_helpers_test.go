package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"contacts/config"
	"contacts/internal/domain/repository"
	mockRepo "contacts/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			TokenTTL:    time.Hour,
			TokenHeader: "X-API-TOKEN",
			BcryptCost:  4,
		},
		Search: &config.SearchConfig{
			DefaultPageSize: 10,
		},
	}
}

// testRepos bundles repository mocks handed out by a transaction's factory.
type testRepos struct {
	users     *mockRepo.MockUserRepository
	contacts  *mockRepo.MockContactRepository
	addresses *mockRepo.MockAddressRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()

	return &testRepos{
		users:     mockRepo.NewMockUserRepository(t),
		contacts:  mockRepo.NewMockContactRepository(t),
		addresses: mockRepo.NewMockAddressRepository(t),
	}
}

// expectTransaction makes the transaction manager run the callback once against the repos.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, repos *testRepos) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(repos.users).Maybe()
			factory.EXPECT().ContactRepo().Return(repos.contacts).Maybe()
			factory.EXPECT().AddressRepo().Return(repos.addresses).Maybe()

			return fn(factory)
		}).
		Once()
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
