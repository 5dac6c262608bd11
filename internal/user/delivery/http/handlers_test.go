package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront/config"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/user"
	"storefront/internal/user/mocks"
	"storefront/pkg/log"
	"storefront/pkg/response"
)

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := mocks.NewMockUseCase(gomock.NewController(t))
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), config.RateLimitConfig{}))
	return r, uc
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Create(gomock.Any(), user.CreateInput{Email: "jane@example.com", Name: "Jane"}).
			Return(user.CreateOutput{User: model.User{ID: 5, Email: "jane@example.com", Name: "Jane"}}, nil)

		w := do(r, http.MethodPost, "/api/v1/users", `{"email":"jane@example.com","name":" Jane "}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]any)
		assert.EqualValues(t, 5, data["id"])
		assert.Equal(t, "jane@example.com", data["email"])
	})

	t.Run("conflict", func(t *testing.T) {
		for _, err := range []error{
			fmt.Errorf("%w: jane@example.com", user.ErrEmailTaken),
			fmt.Errorf("%w: constraint users_email_key", user.ErrDuplicateKey),
		} {
			r, uc := newRouter(t)
			uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(user.CreateOutput{}, err)

			w := do(r, http.MethodPost, "/api/v1/users", `{"email":"jane@example.com","name":"Jane"}`)
			assert.Equal(t, http.StatusConflict, w.Code)
		}
	})

	for name, body := range map[string]string{
		"bad email":    `{"email":"not-an-email","name":"Jane"}`,
		"missing name": `{"email":"jane@example.com"}`,
		"blank name":   `{"email":"jane@example.com","name":"   "}`,
	} {
		t.Run("bad request/"+name, func(t *testing.T) {
			r, _ := newRouter(t)
			w := do(r, http.MethodPost, "/api/v1/users", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDetail(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Detail(gomock.Any(), int64(99999)).Return(user.DetailOutput{}, user.ErrNotFound)

		w := do(r, http.MethodGet, "/api/v1/users/99999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("internal", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Detail(gomock.Any(), int64(1)).Return(user.DetailOutput{}, fmt.Errorf("boom"))

		w := do(r, http.MethodGet, "/api/v1/users/1", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		r, _ := newRouter(t)
		w := do(r, http.MethodGet, "/api/v1/users/x", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
