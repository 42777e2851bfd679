//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// FakeAdminAPI answers the product lookup query for any shop. Products are
// keyed by GID; unknown ids resolve to a null product.
type FakeAdminAPI struct {
	*httptest.Server

	mu       sync.RWMutex
	products map[string]FakeProduct
	tokens   map[string]string // shop -> expected access token
	failing  bool
}

type FakeProduct struct {
	Title    string
	ImageURL string
	AltText  string
}

func NewFakeAdminAPI() *FakeAdminAPI {
	f := &FakeAdminAPI{
		products: map[string]FakeProduct{},
		tokens:   map[string]string{},
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serveGraphQL))
	return f
}

// Endpoint routes every shop to this server, keeping the shop in the path.
func (f *FakeAdminAPI) Endpoint(shop, apiVersion string) string {
	return f.URL + "/" + shop + "/admin/api/" + apiVersion + "/graphql.json"
}

func (f *FakeAdminAPI) AddProduct(gid string, p FakeProduct) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[gid] = p
}

func (f *FakeAdminAPI) ExpectToken(shop, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[shop] = token
}

func (f *FakeAdminAPI) SetFailing(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = failing
}

func (f *FakeAdminAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = map[string]FakeProduct{}
	f.tokens = map[string]string{}
	f.failing = false
}

func (f *FakeAdminAPI) serveGraphQL(w http.ResponseWriter, r *http.Request) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.failing {
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
		return
	}

	shop, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if want, ok := f.tokens[shop]; !ok || r.Header.Get("X-Shopify-Access-Token") != want {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":"[API] Invalid API key or access token"}`))
		return
	}

	var req struct {
		Variables struct {
			ID string `json:"id"`
		} `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var product any
	if p, ok := f.products[req.Variables.ID]; ok {
		nodes := []any{}
		if p.ImageURL != "" {
			nodes = append(nodes, map[string]any{
				"preview": map[string]any{
					"image": map[string]any{"altText": p.AltText, "url": p.ImageURL},
				},
			})
		}
		product = map[string]any{
			"title": p.Title,
			"media": map[string]any{"nodes": nodes},
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"product": product}})
}
