package handler

import (
	"net/http"
	"testing"

	domainerrors "contacts/internal/domain/errors"
	mockUsecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	uc.EXPECT().Create(mock.Anything, testUser, &usecase.CreateContactInput{FirstName: "Budi", Email: "budi@example.com"}).
		Return(&usecase.ContactOutput{ID: "c-1", FirstName: "Budi", Email: "budi@example.com"}, nil)
	c, rec := newTestContext(http.MethodPost, "/api/contacts", `{"firstName":"Budi","email":"budi@example.com"}`, testUser)

	require.NoError(t, NewContactHandler(uc).Create(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "c-1", data["id"])
	assert.Equal(t, "Budi", data["firstName"])
}

func TestContactHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc := mockUsecase.NewMockContactUsecase(t)
		uc.EXPECT().Get(mock.Anything, testUser, "c-1").Return(&usecase.ContactOutput{ID: "c-1"}, nil)
		c, rec := newTestContext(http.MethodGet, "/api/contacts/c-1", "", testUser)
		c.SetParamNames("contactId")
		c.SetParamValues("c-1")

		require.NoError(t, NewContactHandler(uc).Get(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		uc := mockUsecase.NewMockContactUsecase(t)
		uc.EXPECT().Get(mock.Anything, testUser, "nope").Return(nil, domainerrors.ErrContactNotFound)
		c, _ := newTestContext(http.MethodGet, "/api/contacts/nope", "", testUser)
		c.SetParamNames("contactId")
		c.SetParamValues("nope")

		err := NewContactHandler(uc).Get(c)

		require.ErrorIs(t, err, domainerrors.ErrContactNotFound)
	})
}

func TestContactHandler_Update(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	uc.EXPECT().Update(mock.Anything, testUser, "c-1", &usecase.UpdateContactInput{FirstName: "Budi", Phone: "0811"}).
		Return(&usecase.ContactOutput{ID: "c-1", FirstName: "Budi", Phone: "0811"}, nil)
	c, rec := newTestContext(http.MethodPut, "/api/contacts/c-1", `{"firstName":"Budi","phone":"0811"}`, testUser)
	c.SetParamNames("contactId")
	c.SetParamValues("c-1")

	require.NoError(t, NewContactHandler(uc).Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactHandler_Delete(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	uc.EXPECT().Delete(mock.Anything, testUser, "c-1").Return(nil)
	c, rec := newTestContext(http.MethodDelete, "/api/contacts/c-1", "", testUser)
	c.SetParamNames("contactId")
	c.SetParamValues("c-1")

	require.NoError(t, NewContactHandler(uc).Delete(c))

	assert.Equal(t, "ok", decodeBody(t, rec)["data"])
}

func TestContactHandler_Search(t *testing.T) {
	t.Run("passes filters and renders paging", func(t *testing.T) {
		uc := mockUsecase.NewMockContactUsecase(t)
		uc.EXPECT().Search(mock.Anything, testUser, mock.MatchedBy(func(in *usecase.SearchContactInput) bool {
			return in.Name == "eko" && in.Email == "" && in.Page != nil && *in.Page == 1 && in.Size != nil && *in.Size == 5
		})).Return(&usecase.ContactPage{
			Items:  []*usecase.ContactOutput{{ID: "c-6"}},
			Paging: usecase.PagingOutput{CurrentPage: 1, TotalPage: 2, Size: 5},
		}, nil)
		c, rec := newTestContext(http.MethodGet, "/api/contacts?name=eko&page=1&size=5", "", testUser)

		require.NoError(t, NewContactHandler(uc).Search(c))

		body := decodeBody(t, rec)
		assert.Len(t, body["data"], 1)
		assert.Equal(t, map[string]any{"currentPage": float64(1), "totalPage": float64(2), "size": float64(5)}, body["paging"])
	})

	t.Run("absent paging parameters stay nil", func(t *testing.T) {
		uc := mockUsecase.NewMockContactUsecase(t)
		uc.EXPECT().Search(mock.Anything, testUser, &usecase.SearchContactInput{}).
			Return(&usecase.ContactPage{Items: []*usecase.ContactOutput{}, Paging: usecase.PagingOutput{Size: 10}}, nil)
		c, rec := newTestContext(http.MethodGet, "/api/contacts", "", testUser)

		require.NoError(t, NewContactHandler(uc).Search(c))

		assert.Equal(t, []any{}, decodeBody(t, rec)["data"])
	})

	t.Run("non numeric page", func(t *testing.T) {
		uc := mockUsecase.NewMockContactUsecase(t)
		c, _ := newTestContext(http.MethodGet, "/api/contacts?page=abc", "", testUser)

		err := NewContactHandler(uc).Search(c)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestContactHandler_QRCode(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	uc.EXPECT().QRCode(mock.Anything, testUser, "c-1").Return([]byte("\x89PNG"), nil)
	c, rec := newTestContext(http.MethodGet, "/api/contacts/c-1/qrcode", "", testUser)
	c.SetParamNames("contactId")
	c.SetParamValues("c-1")

	require.NoError(t, NewContactHandler(uc).QRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}
