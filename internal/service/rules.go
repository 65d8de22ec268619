package service

import "github.com/MKhiriev/go-contact-keeper/internal/validators"

// addressesField is the payload key holding the nested addresses of a
// contact. Its capitalization follows the public API.
const addressesField = "Addresses"

// maxAddresses bounds the number of addresses stored with one contact.
const maxAddresses = 100

var (
	registerRules = validators.RuleSet{
		{Field: "name", Checks: "required"},
		{Field: "email", Checks: "required,isEmail"},
		{Field: "password", Checks: "required,isStrongPassword"},
		{Field: "confirmPassword", Checks: "required"},
	}

	loginRules = validators.RuleSet{
		{Field: "email", Checks: "required,isEmail"},
		{Field: "password", Checks: "required"},
	}

	forgotPasswordRules = validators.RuleSet{
		{Field: "email", Checks: "required,isEmail"},
	}

	contactRules = validators.RuleSet{
		{Field: "firstName", Checks: "required"},
		{Field: "lastName"},
		{Field: "email", Checks: "isEmail"},
		{Field: "phone"},
	}

	addressRules = validators.RuleSet{
		{Field: "addressType", Checks: "required"},
		{Field: "street", Checks: "required"},
		{Field: "city"},
		{Field: "province"},
		{Field: "country"},
		{Field: "postalCode"},
	}
)

// updateRules declares rules only for the fields present in input, so an
// update may touch any subset of them.
func updateRules(input map[string]any) validators.RuleSet {
	var rules validators.RuleSet
	if validators.Present(input, "name") {
		rules = rules.With(validators.Rule{Field: "name", Checks: "required"})
	}
	if validators.Present(input, "email") {
		rules = rules.With(validators.Rule{Field: "email", Checks: "required,isEmail"})
	}
	if validators.Present(input, "password") {
		rules = rules.With(
			validators.Rule{Field: "password", Checks: "required,isStrongPassword"},
			validators.Rule{Field: "confirmPassword", Checks: "required"},
		)
	}
	return rules
}
