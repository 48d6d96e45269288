package domain

// SubjectType differentiates console agent tokens from customer portal
// tokens.
type SubjectType string

const (
	SubjectTypeAgent    SubjectType = "AGENT"
	SubjectTypeCustomer SubjectType = "CUSTOMER"
)
