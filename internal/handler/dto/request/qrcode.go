package request

import (
	"shopify-qrcode-app/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

// No binding tags: missing fields are reported per field by the create
// command.
type CreateQRCodeRequest struct {
	Title            string `json:"title"`
	ProductID        string `json:"productId"`
	ProductHandle    string `json:"productHandle"`
	ProductVariantID string `json:"productVariantId"`
	Destination      string `json:"destination"`
}

func (r *CreateQRCodeRequest) ToCommand() (commands.CreateQRCodeRequest, error) {
	var cmd commands.CreateQRCodeRequest
	if err := copier.Copy(&cmd, r); err != nil {
		return commands.CreateQRCodeRequest{}, err
	}
	return cmd, nil
}
