package checkout

// CreateCheckoutRequest mirrors the storefront payload. Only items and email
// are required here; name, phone and pickup window are attached to the
// session metadata when the storefront sends them.
type CreateCheckoutRequest struct {
	Items        []ItemDTO `json:"items"`
	PickupWindow string    `json:"pickupWindow,omitempty"`
	Name         string    `json:"name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email"`
}

type ItemDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type CreateCheckoutResponse struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Message string `json:"message"`
}
