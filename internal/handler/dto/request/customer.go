package request

type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Notes   *string `json:"notes,omitempty"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}
