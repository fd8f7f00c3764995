package transport

// Response is the envelope every endpoint returns. Status repeats the
// HTTP code in the body; Data is omitted on pure-error responses.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProductList extends the envelope for product listings.
type ProductList struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	IsEmpty bool   `json:"isEmpty"`
	Length  int    `json:"length"`
	Data    any    `json:"data"`
}
