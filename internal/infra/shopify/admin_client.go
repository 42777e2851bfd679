package shopify

import (
	"context"
	"net/http"

	"shopify-qrcode-app/internal/infra"
	"shopify-qrcode-app/internal/pkg/errs"
	"shopify-qrcode-app/internal/usecase/shared"

	"github.com/machinebox/graphql"
)

const productLookupQuery = `
query supplementQRCode($id: ID!) {
  product(id: $id) {
    title
    media(first: 1) {
      nodes {
        preview {
          image {
            altText
            url
          }
        }
      }
    }
  }
}`

const accessTokenHeader = "X-Shopify-Access-Token"

// AccessTokenSource yields the offline Admin API token stored for a shop.
type AccessTokenSource interface {
	FindOfflineAccessToken(ctx context.Context, shop string) (string, error)
}

type AdminClient struct {
	tokens     AccessTokenSource
	apiVersion string
	httpClient *http.Client
	endpoint   func(shop, apiVersion string) string
}

type Option func(*AdminClient)

func WithHTTPClient(c *http.Client) Option {
	return func(a *AdminClient) { a.httpClient = c }
}

// WithEndpoint overrides how the per-shop GraphQL URL is built.
func WithEndpoint(fn func(shop, apiVersion string) string) Option {
	return func(a *AdminClient) { a.endpoint = fn }
}

func NewAdminClient(tokens AccessTokenSource, apiVersion string, opts ...Option) *AdminClient {
	c := &AdminClient{
		tokens:     tokens,
		apiVersion: apiVersion,
		httpClient: http.DefaultClient,
		endpoint:   DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func DefaultEndpoint(shop, apiVersion string) string {
	return "https://" + shop + "/admin/api/" + apiVersion + "/graphql.json"
}

type productLookupResponse struct {
	Product *struct {
		Title string `json:"title"`
		Media struct {
			Nodes []struct {
				Preview *struct {
					Image *struct {
						AltText *string `json:"altText"`
						URL     string  `json:"url"`
					} `json:"image"`
				} `json:"preview"`
			} `json:"nodes"`
		} `json:"media"`
	} `json:"product"`
}

// LookupProduct returns nil when the product no longer exists. Any transport
// or GraphQL error is returned marked with ErrRemoteLookupFailure.
func (c *AdminClient) LookupProduct(ctx context.Context, shop, productID string) (*shared.ProductSnapshot, error) {
	token, err := c.tokens.FindOfflineAccessToken(ctx, shop)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Wrapf(err, "no admin access for %s", shop), errs.ErrShopNotInstalled)
		}
		return nil, err
	}

	client := graphql.NewClient(c.endpoint(shop, c.apiVersion), graphql.WithHTTPClient(c.httpClient))

	req := graphql.NewRequest(productLookupQuery)
	req.Var("id", productID)
	req.Header.Set(accessTokenHeader, token)

	var resp productLookupResponse
	if err := client.Run(ctx, req, &resp); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "product lookup for %s", productID), errs.ErrRemoteLookupFailure)
	}

	return toProductSnapshot(resp), nil
}

func toProductSnapshot(resp productLookupResponse) *shared.ProductSnapshot {
	if resp.Product == nil || resp.Product.Title == "" {
		return nil
	}

	snapshot := &shared.ProductSnapshot{Title: resp.Product.Title}
	if len(resp.Product.Media.Nodes) == 0 {
		return snapshot
	}
	preview := resp.Product.Media.Nodes[0].Preview
	if preview == nil || preview.Image == nil {
		return snapshot
	}
	if preview.Image.URL != "" {
		url := preview.Image.URL
		snapshot.ImageURL = &url
	}
	snapshot.ImageAlt = preview.Image.AltText
	return snapshot
}
