package dto

// CustomerUpsertRequest carries the customer form's submitted fields. The
// same shape serves create and edit; edit leaves password blank to keep the
// existing credential.
type CustomerUpsertRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// CustomerResponse is the public view of a customer account.
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Status      string `json:"status"`
}
