package commands

// CreateQRCodeRequest carries the admin form fields; handlers fill it from the
// request DTO.
type CreateQRCodeRequest struct {
	Title            string
	ProductID        string
	ProductHandle    string
	ProductVariantID string
	Destination      string
}

type CreateQRCodeResult struct {
	ID int64
}
