//go:build unit

package shopify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopify-qrcode-app/internal/infra"
	"shopify-qrcode-app/internal/infra/shopify"
	"shopify-qrcode-app/internal/pkg/errs"
	"shopify-qrcode-app/internal/usecase/shared"
	shopifymock "shopify-qrcode-app/tests/mock/shopify"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testShop      = "s.myshopify.com"
	testProductID = "gid://shopify/Product/1"
	testToken     = "shpat_test"
)

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newAdminAPI(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/api/2024-10/graphql.json", r.URL.Path)
		assert.Equal(t, testToken, r.Header.Get("X-Shopify-Access-Token"))

		var req graphqlRequest
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			assert.Contains(t, req.Query, "product(id: $id)")
			assert.Equal(t, testProductID, req.Variables["id"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server, tokens shopify.AccessTokenSource) *shopify.AdminClient {
	t.Helper()
	return shopify.NewAdminClient(tokens, "2024-10",
		shopify.WithHTTPClient(srv.Client()),
		shopify.WithEndpoint(func(_, apiVersion string) string {
			return srv.URL + "/admin/api/" + apiVersion + "/graphql.json"
		}),
	)
}

func ptr(s string) *string { return &s }

func TestAdminClient_LookupProduct(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		want    *shared.ProductSnapshot
		wantErr error
	}{
		{
			name:   "product with image",
			status: http.StatusOK,
			body: `{"data":{"product":{"title":"Ceramic Mug","media":{"nodes":[
				{"preview":{"image":{"altText":"A white mug","url":"https://cdn.example.test/mug.png"}}}]}}}}`,
			want: &shared.ProductSnapshot{
				Title:    "Ceramic Mug",
				ImageURL: ptr("https://cdn.example.test/mug.png"),
				ImageAlt: ptr("A white mug"),
			},
		},
		{
			name:   "product without media",
			status: http.StatusOK,
			body:   `{"data":{"product":{"title":"Ceramic Mug","media":{"nodes":[]}}}}`,
			want:   &shared.ProductSnapshot{Title: "Ceramic Mug"},
		},
		{
			name:   "media without preview image",
			status: http.StatusOK,
			body:   `{"data":{"product":{"title":"Ceramic Mug","media":{"nodes":[{"preview":null}]}}}}`,
			want:   &shared.ProductSnapshot{Title: "Ceramic Mug"},
		},
		{
			name:   "deleted product",
			status: http.StatusOK,
			body:   `{"data":{"product":null}}`,
			want:   nil,
		},
		{
			name:   "product without title counts as deleted",
			status: http.StatusOK,
			body:   `{"data":{"product":{"title":"","media":{"nodes":[]}}}}`,
			want:   nil,
		},
		{
			name:    "graphql error",
			status:  http.StatusOK,
			body:    `{"errors":[{"message":"Throttled"}]}`,
			wantErr: errs.ErrRemoteLookupFailure,
		},
		{
			name:    "non json failure",
			status:  http.StatusBadGateway,
			body:    `upstream unavailable`,
			wantErr: errs.ErrRemoteLookupFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokens := shopifymock.NewMockAccessTokenSource(ctrl)
			tokens.EXPECT().FindOfflineAccessToken(gomock.Any(), testShop).Return(testToken, nil)

			client := newClient(t, newAdminAPI(t, tc.status, tc.body), tokens)

			actual, err := client.LookupProduct(context.Background(), testShop, testProductID)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, actual); diff != "" {
				t.Errorf("LookupProduct() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdminClient_LookupProduct_NoOfflineSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := shopifymock.NewMockAccessTokenSource(ctrl)
	tokens.EXPECT().FindOfflineAccessToken(gomock.Any(), testShop).
		Return("", infra.WrapRepoErr("offline session not found", nil, infra.KindNotFound))

	client := shopify.NewAdminClient(tokens, "2024-10")

	actual, err := client.LookupProduct(context.Background(), testShop, testProductID)
	assert.Nil(t, actual)
	assert.True(t, errs.Is(err, errs.ErrShopNotInstalled))
}

func TestAdminClient_LookupProduct_TokenStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := shopifymock.NewMockAccessTokenSource(ctrl)
	tokens.EXPECT().FindOfflineAccessToken(gomock.Any(), testShop).
		Return("", infra.WrapRepoErr("failed to get offline access token", errors.New("connection reset")))

	client := shopify.NewAdminClient(tokens, "2024-10")

	_, err := client.LookupProduct(context.Background(), testShop, testProductID)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	assert.False(t, errs.Is(err, errs.ErrRemoteLookupFailure))
}

func TestAdminClient_LookupProduct_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	ctrl := gomock.NewController(t)
	tokens := shopifymock.NewMockAccessTokenSource(ctrl)
	tokens.EXPECT().FindOfflineAccessToken(gomock.Any(), testShop).Return(testToken, nil)

	client := newClient(t, srv, tokens)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.LookupProduct(ctx, testShop, testProductID)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrRemoteLookupFailure))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestDefaultEndpoint(t *testing.T) {
	assert.Equal(t, "https://s.myshopify.com/admin/api/2024-10/graphql.json", shopify.DefaultEndpoint(testShop, "2024-10"))
}
