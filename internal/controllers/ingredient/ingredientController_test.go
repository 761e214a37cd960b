package ingredientController_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	authMiddleware "github.com/gmaschi/go-recipes-api/internal/controllers/middlewares/auth"
	recipesApiFactory "github.com/gmaschi/go-recipes-api/internal/factories/recipes-api-factory"
	mockedstore "github.com/gmaschi/go-recipes-api/internal/mocks/datastore/postgresql/recipes"
	ingredientModel "github.com/gmaschi/go-recipes-api/internal/models/ingredient"
	db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-api/pkg/auth/tokenAuth"
	"github.com/gmaschi/go-recipes-api/pkg/config/env"
	"github.com/gmaschi/go-recipes-api/pkg/tools/random"
	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	user := randomUser()
	ingredients := []db.Ingredient{randomIngredient(user.ID), randomIngredient(user.ID)}

	testCases := []struct {
		name          string
		query         string
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker)
		buildStubs    func(store *mockedstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListIngredients(gomock.Any(), gomock.Eq(db.ListIngredientsParams{UserID: user.ID})).
					Times(1).
					Return(ingredients, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got []ingredientModel.Response
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, []ingredientModel.Response{ingredientModel.NewResponse(ingredients[0]), ingredientModel.NewResponse(ingredients[1])}, got)
			},
		},
		{
			name:  "AssignedOnly",
			query: "?assigned_only=1",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListIngredients(gomock.Any(), gomock.Eq(db.ListIngredientsParams{UserID: user.ID, AssignedOnly: true})).
					Times(1).
					Return(ingredients[:1], nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got []ingredientModel.Response
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Len(t, got, 1)
			},
		},
		{
			name:  "AssignedOnlyZero",
			query: "?assigned_only=0",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListIngredients(gomock.Any(), gomock.Eq(db.ListIngredientsParams{UserID: user.ID})).
					Times(1).
					Return([]db.Ingredient{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.JSONEq(t, "[]", recorder.Body.String())
			},
		},
		{
			name:  "InvalidAssignedOnly",
			query: "?assigned_only=yes",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListIngredients(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:      "NoAuthorization",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListIngredients(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "InternalError",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					ListIngredients(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockedstore.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/recipe/ingredients"+tc.query, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, server.TokenAuth)
			server.Router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestCreate(t *testing.T) {
	user := randomUser()
	ingredient := randomIngredient(user.ID)

	testCases := []struct {
		name          string
		body          map[string]interface{}
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker)
		buildStubs    func(store *mockedstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: map[string]interface{}{
				"name": ingredient.Name,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateIngredient(gomock.Any(), gomock.Eq(db.CreateIngredientParams{UserID: user.ID, Name: ingredient.Name})).
					Times(1).
					Return(ingredient, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
				requireBodyMatchIngredient(t, recorder.Body, ingredient)
			},
		},
		{
			name: "Duplicate",
			body: map[string]interface{}{
				"name": ingredient.Name,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Ingredient{}, &pq.Error{Code: "23505"})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireFieldError(t, recorder.Body, "name")
			},
		},
		{
			name: "MissingName",
			body: map[string]interface{}{},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireFieldError(t, recorder.Body, "name")
			},
		},
		{
			name: "NameTooLong",
			body: map[string]interface{}{
				"name": random.String(256),
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireFieldError(t, recorder.Body, "name")
			},
		},
		{
			name: "BlankName",
			body: map[string]interface{}{
				"name": "   ",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireFieldError(t, recorder.Body, "name")
			},
		},
		{
			name: "TrimmedName",
			body: map[string]interface{}{
				"name": "  " + ingredient.Name + " ",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateIngredient(gomock.Any(), gomock.Eq(db.CreateIngredientParams{UserID: user.ID, Name: ingredient.Name})).
					Times(1).
					Return(ingredient, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
				requireBodyMatchIngredient(t, recorder.Body, ingredient)
			},
		},
		{
			name: "UserNotFound",
			body: map[string]interface{}{
				"name": ingredient.Name,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Ingredient{}, &pq.Error{Code: "23503"})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "NoAuthorization",
			body: map[string]interface{}{
				"name": ingredient.Name,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "InternalError",
			body: map[string]interface{}{
				"name": ingredient.Name,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					CreateIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Ingredient{}, sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockedstore.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/recipe/ingredients", bytes.NewReader(data))
			require.NoError(t, err)
			request.Header.Set("Content-Type", "application/json")

			tc.setupAuth(t, request, server.TokenAuth)
			server.Router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestCreateFormEncoded(t *testing.T) {
	user := randomUser()
	ingredient := randomIngredient(user.ID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockedstore.NewMockStore(ctrl)
	store.EXPECT().
		CreateIngredient(gomock.Any(), gomock.Eq(db.CreateIngredientParams{UserID: user.ID, Name: ingredient.Name})).
		Times(1).
		Return(ingredient, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	form := url.Values{"name": {ingredient.Name}}
	request, err := http.NewRequest(http.MethodPost, "/recipe/ingredients", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	addAuthorization(t, request, server.TokenAuth, authMiddleware.AuthorizationTypeToken, user, time.Minute)

	server.Router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code)
	requireBodyMatchIngredient(t, recorder.Body, ingredient)
}

func TestIngredient(t *testing.T) {
	user := randomUser()
	ingredient := randomIngredient(user.ID)

	testCases := []struct {
		name          string
		ingredientID  int64
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker)
		buildStubs    func(store *mockedstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:         "OK",
			ingredientID: ingredient.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Eq(db.GetIngredientParams{ID: ingredient.ID, UserID: user.ID})).
					Times(1).
					Return(ingredient, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchIngredient(t, recorder.Body, ingredient)
			},
		},
		{
			name:         "NotFound",
			ingredientID: ingredient.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Ingredient{}, sql.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:         "InvalidID",
			ingredientID: 0,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:         "NoAuthorization",
			ingredientID: ingredient.ID,
			setupAuth:    func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name:         "InternalError",
			ingredientID: ingredient.ID,
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Ingredient{}, sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockedstore.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/recipe/ingredients/%d", tc.ingredientID), nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, server.TokenAuth)
			server.Router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestUpdate(t *testing.T) {
	user := randomUser()
	ingredient := randomIngredient(user.ID)
	newName := random.String(8)
	renamed := db.Ingredient{ID: ingredient.ID, UserID: user.ID, Name: newName}

	testCases := []struct {
		name          string
		method        string
		body          map[string]interface{}
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker)
		buildStubs    func(store *mockedstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "PatchOK",
			method: http.MethodPatch,
			body: map[string]interface{}{
				"name": newName,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Eq(db.GetIngredientParams{ID: ingredient.ID, UserID: user.ID})).
					Times(1).
					Return(ingredient, nil)
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Eq(db.UpdateIngredientParams{ID: ingredient.ID, UserID: user.ID, Name: newName})).
					Times(1).
					Return(renamed, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchIngredient(t, recorder.Body, renamed)
			},
		},
		{
			name:   "PatchSameName",
			method: http.MethodPatch,
			body: map[string]interface{}{
				"name": ingredient.Name,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(ingredient, nil)
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchIngredient(t, recorder.Body, ingredient)
			},
		},
		{
			name:   "PatchEmptyBody",
			method: http.MethodPatch,
			body:   map[string]interface{}{},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(ingredient, nil)
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchIngredient(t, recorder.Body, ingredient)
			},
		},
		{
			name:   "PatchDuplicateName",
			method: http.MethodPatch,
			body: map[string]interface{}{
				"name": newName,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(ingredient, nil)
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Ingredient{}, &pq.Error{Code: "23505"})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireFieldError(t, recorder.Body, "name")
			},
		},
		{
			name:   "PatchBlankName",
			method: http.MethodPatch,
			body: map[string]interface{}{
				"name": "",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireFieldError(t, recorder.Body, "name")
			},
		},
		{
			name:   "PatchWhitespaceName",
			method: http.MethodPatch,
			body: map[string]interface{}{
				"name": "   ",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(0)
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireFieldError(t, recorder.Body, "name")
			},
		},
		{
			name:   "PatchPaddedSameName",
			method: http.MethodPatch,
			body: map[string]interface{}{
				"name": " " + ingredient.Name + " ",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(ingredient, nil)
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchIngredient(t, recorder.Body, ingredient)
			},
		},
		{
			name:   "PatchNotFound",
			method: http.MethodPatch,
			body: map[string]interface{}{
				"name": newName,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					GetIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Ingredient{}, sql.ErrNoRows)
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:   "PutOK",
			method: http.MethodPut,
			body: map[string]interface{}{
				"name": newName,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Eq(db.UpdateIngredientParams{ID: ingredient.ID, UserID: user.ID, Name: newName})).
					Times(1).
					Return(renamed, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchIngredient(t, recorder.Body, renamed)
			},
		},
		{
			name:   "PutTrimmedName",
			method: http.MethodPut,
			body: map[string]interface{}{
				"name": " " + newName + "  ",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Eq(db.UpdateIngredientParams{ID: ingredient.ID, UserID: user.ID, Name: newName})).
					Times(1).
					Return(renamed, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchIngredient(t, recorder.Body, renamed)
			},
		},
		{
			name:   "PutBlankName",
			method: http.MethodPut,
			body: map[string]interface{}{
				"name": "\t ",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireFieldError(t, recorder.Body, "name")
			},
		},
		{
			name:   "PutMissingName",
			method: http.MethodPut,
			body:   map[string]interface{}{},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				requireFieldError(t, recorder.Body, "name")
			},
		},
		{
			name:   "PutNotFound",
			method: http.MethodPut,
			body: map[string]interface{}{
				"name": newName,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Ingredient{}, sql.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:   "NoAuthorization",
			method: http.MethodPut,
			body: map[string]interface{}{
				"name": newName,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					UpdateIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockedstore.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(tc.method, fmt.Sprintf("/recipe/ingredients/%d", ingredient.ID), bytes.NewReader(data))
			require.NoError(t, err)
			request.Header.Set("Content-Type", "application/json")

			tc.setupAuth(t, request, server.TokenAuth)
			server.Router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestDelete(t *testing.T) {
	user := randomUser()
	ingredient := randomIngredient(user.ID)

	testCases := []struct {
		name          string
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker)
		buildStubs    func(store *mockedstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					DeleteIngredient(gomock.Any(), gomock.Eq(db.DeleteIngredientParams{ID: ingredient.ID, UserID: user.ID})).
					Times(1).
					Return(int64(1), nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNoContent, recorder.Code)
			},
		},
		{
			name: "NotFound",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					DeleteIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(int64(0), nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:      "NoAuthorization",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					DeleteIngredient(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
		{
			name: "InternalError",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker tokenAuth.Maker) {
				addAuthorization(t, request, tokenMaker, authMiddleware.AuthorizationTypeBearer, user, time.Minute)
			},
			buildStubs: func(store *mockedstore.MockStore) {
				store.EXPECT().
					DeleteIngredient(gomock.Any(), gomock.Any()).
					Times(1).
					Return(int64(0), sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockedstore.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("/recipe/ingredients/%d", ingredient.ID), nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, server.TokenAuth)
			server.Router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func newTestServer(t *testing.T, store db.Store) *recipesApiFactory.Factory {
	config := env.NewConfig(random.String(32), time.Minute)
	config.Media.Root = t.TempDir()

	server, err := recipesApiFactory.New(config, store)
	require.NoError(t, err)
	return server
}

func randomUser() db.User {
	return db.User{
		ID:       random.Int(1, 1000),
		Email:    random.Email(),
		Name:     random.String(8),
		IsActive: true,
	}
}

func randomIngredient(userID int64) db.Ingredient {
	return db.Ingredient{
		ID:     random.Int(1, 1000),
		UserID: userID,
		Name:   random.String(6),
	}
}

func requireBodyMatchIngredient(t *testing.T, body *bytes.Buffer, ingredient db.Ingredient) {
	var gotIngredient ingredientModel.Response
	err := json.Unmarshal(body.Bytes(), &gotIngredient)
	require.NoError(t, err)
	require.Equal(t, ingredientModel.NewResponse(ingredient), gotIngredient)
}

func requireFieldError(t *testing.T, body *bytes.Buffer, field string) {
	var res struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &res))
	require.Contains(t, res.Errors, field)
}

func addAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker tokenAuth.Maker,
	authorizationType string,
	user db.User,
	duration time.Duration,
) {
	token, err := tokenMaker.CreateToken(user.ID, user.Email, duration)
	require.NoError(t, err)

	authorizationHeader := fmt.Sprintf("%s %s", authorizationType, token)
	request.Header.Set(authMiddleware.AuthorizationHeaderKey, authorizationHeader)
}
