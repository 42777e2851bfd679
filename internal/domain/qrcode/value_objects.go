package qrcode

import (
	"regexp"
	"sort"
	"strings"
)

var (
	variantIDPattern       = regexp.MustCompile(`gid://shopify/ProductVariant/([0-9]+)`)
	strictVariantIDPattern = regexp.MustCompile(`^gid://shopify/ProductVariant/[0-9]+$`)
)

// VariantNumericID extracts the numeric part of a ProductVariant GID. Stored
// records are matched leniently; new input goes through ValidateForm instead.
func VariantNumericID(gid string) (string, error) {
	match := variantIDPattern.FindStringSubmatch(gid)
	if match == nil {
		return "", ErrMalformedVariantID
	}
	return match[1], nil
}

// FormInput is what the admin form submits when creating a code.
type FormInput struct {
	Title            string
	ProductID        string
	ProductHandle    string
	ProductVariantID string
	Destination      string
}

// ValidationErrors maps a form field to a user-facing message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + v[field]
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ValidateForm returns nil when the input can be saved.
func ValidateForm(in FormInput) ValidationErrors {
	errors := ValidationErrors{}

	if strings.TrimSpace(in.Title) == "" {
		errors["title"] = "Title is required"
	}

	if strings.TrimSpace(in.ProductID) == "" {
		errors["productId"] = "Product is required"
	}

	switch {
	case in.Destination == "":
		errors["destination"] = "Destination is required"
	case !Destination(in.Destination).IsValid():
		errors["destination"] = "Destination must be product or cart"
	case Destination(in.Destination) == DestinationProduct && strings.TrimSpace(in.ProductHandle) == "":
		errors["productHandle"] = "Product handle is required for product destination"
	case Destination(in.Destination) == DestinationCart:
		if !strictVariantIDPattern.MatchString(in.ProductVariantID) {
			errors["productVariantId"] = "Product variant is required for cart destination"
		}
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
