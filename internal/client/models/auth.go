package models

// LoginResponse is the payload of POST /auth/customer-login. The backend
// names the profile field "user", not "customer".
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	User        *Customer `json:"user"`
}

// RegisterRequest is the payload of POST /customers. CustomAddress carries
// the locally derived mailing-address code; the backend may reject or
// reassign it.
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	CustomAddress   string `json:"customAddress"`
	HaitiAddress    string `json:"haitiAddress"`
	HaitiCity       string `json:"haitiCity"`
	HaitiDepartment string `json:"haitiDepartment"`
}

// UpdateProfileRequest is the payload of PATCH /customers/me.
type UpdateProfileRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	HaitiAddress    string `json:"haitiAddress"`
	HaitiCity       string `json:"haitiCity"`
	HaitiDepartment string `json:"haitiDepartment"`
}
