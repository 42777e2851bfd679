package api

import (
	"net/http"

	reqdto "shopify-qrcode-app/internal/handler/dto/request"
	resdto "shopify-qrcode-app/internal/handler/dto/response"
	"shopify-qrcode-app/internal/handler/httperr"
	"shopify-qrcode-app/internal/handler/middleware"
	"shopify-qrcode-app/internal/pkg/errs"
	"shopify-qrcode-app/internal/usecase/commands"
	"shopify-qrcode-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoShopInContext = errs.New("no authenticated shop in context")

type QRCodeHandler struct {
	cmds commands.QRCodeCommands
	q    queries.QRCodeQueries
}

func NewQRCodeHandler(cmds commands.QRCodeCommands, q queries.QRCodeQueries) *QRCodeHandler {
	return &QRCodeHandler{cmds: cmds, q: q}
}

// @Summary List QR codes
// @Description List the shop's QR codes, newest first, with product data and scan image
// @Tags qrcodes
// @Produce json
// @Security SessionToken
// @Success 200 {array} resdto.QRCodeResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/qrcodes [get]
func (h *QRCodeHandler) List(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoShopInContext, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByShop(c.Request.Context(), shop)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQRCodeViews(views))
}

// @Summary Get QR code
// @Description Get one of the shop's QR codes with product data and scan image
// @Tags qrcodes
// @Produce json
// @Security SessionToken
// @Param id path int true "QR code ID"
// @Success 200 {object} resdto.QRCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/qrcodes/{id} [get]
func (h *QRCodeHandler) Get(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoShopInContext, "Unauthorized", nil)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), shop, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQRCodeView(view))
}

// @Summary Create QR code
// @Description Create a QR code for a product page or a one-item cart
// @Tags qrcodes
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body reqdto.CreateQRCodeRequest true "Create QR code request"
// @Success 201 {object} resdto.CreateQRCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/qrcodes [post]
func (h *QRCodeHandler) Create(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoShopInContext, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), shop, cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateQRCodeResult(result))
}

// @Summary Public QR code page
// @Description Title and scan image of a QR code
// @Tags public
// @Produce json
// @Param id path int true "QR code ID"
// @Success 200 {object} resdto.QRCodeImageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /qrcodes/{id} [get]
func (h *QRCodeHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.q.GetImage(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQRCodeImageView(view))
}

// @Summary Scan QR code
// @Description Count a scan and redirect to the product page or cart
// @Tags public
// @Param id path int true "QR code ID"
// @Success 302
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /qrcodes/{id}/scan [get]
func (h *QRCodeHandler) Scan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	destinationURL, err := h.cmds.Scan(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Redirect(http.StatusFound, destinationURL)
}
