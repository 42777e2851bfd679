//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"shopify-qrcode-app/internal/domain/qrcode"
	"shopify-qrcode-app/internal/handler/api"
	resdto "shopify-qrcode-app/internal/handler/dto/response"
	"shopify-qrcode-app/internal/infra"
	"shopify-qrcode-app/internal/pkg/errs"
	"shopify-qrcode-app/internal/usecase/commands"
	"shopify-qrcode-app/internal/usecase/queries"
	"shopify-qrcode-app/tests/common/builder"
	"shopify-qrcode-app/tests/common/httptest"
	"shopify-qrcode-app/tests/common/testutil"
	commandsmock "shopify-qrcode-app/tests/mock/commands"
	queriesmock "shopify-qrcode-app/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testShop = "s.myshopify.com"

type QRCodeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQRCodeCommands
	mockQueries  *queriesmock.MockQRCodeQueries
	handler      *api.QRCodeHandler
}

func (s *QRCodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQRCodeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQRCodeQueries(s.mockCtrl)
	s.handler = api.NewQRCodeHandler(s.mockCommands, s.mockQueries)

	// stands in for the session token middleware
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("shop", testShop)
		}
		c.Next()
	}

	s.router.GET("/qrcodes/:id", s.handler.Detail)
	s.router.GET("/qrcodes/:id/scan", s.handler.Scan)
	admin := s.router.Group("/api", authMiddleware)
	admin.GET("/qrcodes", s.handler.List)
	admin.POST("/qrcodes", s.handler.Create)
	admin.GET("/qrcodes/:id", s.handler.Get)
}

func (s *QRCodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQRCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(QRCodeHandlerTestSuite))
}

// ================================================================================
// TestScan
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestScan() {
	s.Run("success: 302 to the destination", func() {
		s.mockCommands.EXPECT().Scan(gomock.Any(), int64(7)).
			Return("https://s.myshopify.com/cart/987:1", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/qrcodes/7/scan", nil, "")

		httptest.AssertRedirect(s.T(), rec, "https://s.myshopify.com/cart/987:1")
	})

	invalidIDs := []string{"abc", "0", "-3", "1.5", "99999999999999999999"}
	for _, id := range invalidIDs {
		s.Run("error: 400 for id "+id, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/qrcodes/"+id+"/scan", nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		})
	}

	s.Run("error: 404 for unknown id", func() {
		s.mockCommands.EXPECT().Scan(gomock.Any(), int64(404)).
			Return("", errs.Mark(infra.WrapRepoErr("qr code not found", nil, infra.KindNotFound), errs.ErrQRCodeNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/qrcodes/404/scan", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "QR code not found")
		s.Empty(rec.Header().Get("Location"))
	})

	s.Run("error: 500 when the record cannot be resolved", func() {
		s.mockCommands.EXPECT().Scan(gomock.Any(), int64(9)).
			Return("", errs.Wrapf(qrcode.ErrMalformedVariantID, "qr code %d", 9)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/qrcodes/9/scan", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestDetail
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestDetail() {
	s.Run("success: title and image", func() {
		s.mockQueries.EXPECT().GetImage(gomock.Any(), int64(3)).
			Return(&queries.QRCodeImageView{Title: "Mug poster", Image: "data:image/png;base64,AAAA"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/qrcodes/3", nil, "")

		var body resdto.QRCodeImageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.QRCodeImageResponse{Title: "Mug poster", Image: "data:image/png;base64,AAAA"}, body)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetImage(gomock.Any(), int64(3)).Return(nil, errs.ErrQRCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/qrcodes/3", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "QR code not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestList() {
	s.Run("success: views in store order", func() {
		views := []*queries.QRCodeView{
			builder.NewQRCodeBuilder().WithID(2).BuildView(),
			builder.NewQRCodeBuilder().WithID(1).BuildView(),
		}
		s.mockQueries.EXPECT().ListByShop(gomock.Any(), testShop).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/qrcodes", nil, "session-token")

		var body []resdto.QRCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(int64(2), body[0].ID)
		s.Equal(int64(1), body[1].ID)
		s.Equal("https://s.myshopify.com/products/mug", body[0].DestinationURL)
		s.Require().NotNil(body[0].ProductTitle)
		s.Equal("Ceramic Mug", *body[0].ProductTitle)
	})

	s.Run("success: empty list is []", func() {
		s.mockQueries.EXPECT().ListByShop(gomock.Any(), testShop).Return([]*queries.QRCodeView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/qrcodes", nil, "session-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 401 without a shop", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/qrcodes", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 502 when the product lookup fails", func() {
		s.mockQueries.EXPECT().ListByShop(gomock.Any(), testShop).
			Return(nil, errs.Mark(errors.New("dial tcp: timeout"), errs.ErrRemoteLookupFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/qrcodes", nil, "session-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Product lookup failed")
	})

	s.Run("error: 401 when the shop has no offline session", func() {
		s.mockQueries.EXPECT().ListByShop(gomock.Any(), testShop).Return(nil, errs.ErrShopNotInstalled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/qrcodes", nil, "session-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "no active installation")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewQRCodeBuilder().WithID(5).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testShop, int64(5)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/qrcodes/5", nil, "session-token")

		var body resdto.QRCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(*resdto.FromQRCodeView(view), body)
	})

	s.Run("error: 404 for another shop's code", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testShop, int64(5)).Return(nil, errs.ErrQRCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/qrcodes/5", nil, "session-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "QR code not found")
	})

	s.Run("error: 400 for a bad id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/qrcodes/x", nil, "session-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestCreate() {
	url := "/api/qrcodes"
	reqBody := builder.NewQRCodeBuilder().BuildCreateRequestDTO()

	s.Run("success: 201 with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), testShop, commands.CreateQRCodeRequest{
			Title:            reqBody.Title,
			ProductID:        reqBody.ProductID,
			ProductHandle:    reqBody.ProductHandle,
			ProductVariantID: reqBody.ProductVariantID,
			Destination:      reqBody.Destination,
		}).Return(&commands.CreateQRCodeResult{ID: 11}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-token")

		var body resdto.CreateQRCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(11), body.ID)
	})

	s.Run("error: 422 carries field errors", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("title", nil), testutil.Field("destination", "email"))
		s.mockCommands.EXPECT().Create(gomock.Any(), testShop, gomock.Any()).
			Return(nil, qrcode.ValidationErrors{
				"title":       "Title is required",
				"destination": "Destination must be product or cart",
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "session-token")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Equal(map[string]string{
			"title":       "Title is required",
			"destination": "Destination must be product or cart",
		}, body.Detail.Errors)
	})

	s.Run("error: 400 for malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not an object", "session-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), testShop, gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to create qr code", errors.New("connection reset"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
