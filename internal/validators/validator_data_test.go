// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registerRules = RuleSet{
	{Field: "name", Checks: "required"},
	{Field: "email", Checks: "required,isEmail"},
	{Field: "password", Checks: "required,isStrongPassword"},
	{Field: "confirmPassword", Checks: "required"},
}

func TestNewDataValidator(t *testing.T) {
	v := NewDataValidator()
	require.NotNil(t, v)
	var _ Validator = v
}

func TestValidate_AllValid(t *testing.T) {
	res := NewDataValidator().Validate(context.Background(), registerRules, map[string]any{
		"name":            "  Ann  ",
		"email":           " Ann@Example.COM ",
		"password":        "Str0ng!pass",
		"confirmPassword": "Str0ng!pass",
		"isAdmin":         true,
	})

	assert.True(t, res.Valid())
	assert.Empty(t, res.Messages)
	assert.Equal(t, map[string]any{
		"name":            "Ann",
		"email":           "ann@example.com",
		"password":        "Str0ng!pass",
		"confirmPassword": "Str0ng!pass",
	}, res.Data)
}

// TestValidate_MissingFields verifies that each missing required field gets
// exactly one message and format checks are skipped.
func TestValidate_MissingFields(t *testing.T) {
	res := NewDataValidator().Validate(context.Background(), registerRules, map[string]any{})

	assert.False(t, res.Valid())
	assert.Equal(t, []string{
		"name is required",
		"email is required",
		"password is required",
		"confirmPassword is required",
	}, res.Messages)
	assert.Empty(t, res.Data)
}

func TestValidate_RequiredRunsFirst(t *testing.T) {
	rules := RuleSet{{Field: "email", Checks: "isEmail,required"}}

	res := NewDataValidator().Validate(context.Background(), rules, map[string]any{"email": ""})

	assert.Equal(t, []string{"email is required"}, res.Messages)
}

func TestValidate_FormatErrors(t *testing.T) {
	res := NewDataValidator().Validate(context.Background(), registerRules, map[string]any{
		"name":            "Ann",
		"email":           "not-an-email",
		"password":        "weak",
		"confirmPassword": "weak",
	})

	require.Len(t, res.Messages, 2)
	assert.Equal(t, "email must be a valid email", res.Messages[0])
	assert.Contains(t, res.Messages[1], "password must be at least 8 characters")
	// invalid values still appear in cleaned data
	assert.Equal(t, "not-an-email", res.Data["email"])
}

func TestValidate_OptionalFieldKeptWithoutChecks(t *testing.T) {
	rules := RuleSet{
		{Field: "firstName", Checks: "required"},
		{Field: "phone"},
		{Field: "lastName"},
	}

	res := NewDataValidator().Validate(context.Background(), rules, map[string]any{
		"firstName": "Ann",
		"phone":     float64(5550100),
	})

	assert.True(t, res.Valid())
	assert.Equal(t, "5550100", res.Data["phone"])
	assert.False(t, res.Has("lastName"))
}

func TestValidate_OptionalEmailChecksOnlyWhenPresent(t *testing.T) {
	rules := RuleSet{{Field: "email", Checks: "isEmail"}}
	v := NewDataValidator()

	assert.True(t, v.Validate(context.Background(), rules, map[string]any{}).Valid())
	assert.True(t, v.Validate(context.Background(), rules, map[string]any{"email": nil}).Valid())
	assert.False(t, v.Validate(context.Background(), rules, map[string]any{"email": "nope"}).Valid())
}

func TestValidate_NonScalarValue(t *testing.T) {
	rules := RuleSet{{Field: "name", Checks: "required"}}

	res := NewDataValidator().Validate(context.Background(), rules, map[string]any{
		"name": map[string]any{"first": "Ann"},
	})

	assert.Equal(t, []string{"name must be a string"}, res.Messages)
	assert.False(t, res.Has("name"))
}

func TestValidate_UnknownRule(t *testing.T) {
	rules := RuleSet{{Field: "name", Checks: "required,isPalindrome"}}

	res := NewDataValidator().Validate(context.Background(), rules, map[string]any{"name": "anna"})

	assert.Equal(t, []string{"name has unknown rule isPalindrome"}, res.Messages)
}

func TestValidate_NilInput(t *testing.T) {
	res := NewDataValidator().Validate(context.Background(), registerRules, nil)
	assert.Len(t, res.Messages, 4)
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"Sh0rt!", false},
		{"alllower1!", false},
		{"ALLUPPER1!", false},
		{"NoDigits!!", false},
		{"NoSymbol12", false},
		{"Пароль1!x", true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, isStrongPassword(tt.password))
		})
	}
}

func TestRuleSet_With(t *testing.T) {
	base := RuleSet{{Field: "a"}}
	extended := base.With(Rule{Field: "b"})

	assert.Len(t, base, 1)
	assert.Equal(t, RuleSet{{Field: "a"}, {Field: "b"}}, extended)
}

func TestResult_AddMessageAndString(t *testing.T) {
	res := Result{Data: map[string]any{"email": "a@b.co"}}
	res.AddMessage("Password does not match")

	assert.False(t, res.Valid())
	assert.Equal(t, "a@b.co", res.String("email"))
	assert.Equal(t, "", res.String("missing"))
}

func TestDecode_IntoModel(t *testing.T) {
	var contact models.Contact
	err := Decode(map[string]any{
		"firstName": "Ann",
		"lastName":  "Lee",
		"phone":     "555",
	}, &contact)

	require.NoError(t, err)
	assert.Equal(t, "Ann", contact.FirstName)
	assert.Equal(t, "Lee", contact.LastName)
	assert.Equal(t, "555", contact.Phone)
	assert.Empty(t, contact.Email)
}

func TestDecode_PointerFields(t *testing.T) {
	var update models.UserUpdate
	require.NoError(t, Decode(map[string]any{"name": "Bob"}, &update))

	require.NotNil(t, update.Name)
	assert.Equal(t, "Bob", *update.Name)
	assert.Nil(t, update.Email)
	assert.Nil(t, update.Password)
}

func TestDecode_NonPointerTarget(t *testing.T) {
	err := Decode(map[string]any{"name": "Bob"}, models.UserUpdate{})
	assert.Error(t, err)
}

func TestPresent(t *testing.T) {
	input := map[string]any{"name": "", "email": nil}

	assert.True(t, Present(input, "name"))
	assert.False(t, Present(input, "email"))
	assert.False(t, Present(input, "password"))
}

func TestError_Message(t *testing.T) {
	err := NewError([]string{"a is required", "b is required"}, nil)
	assert.Equal(t, "validation failed: a is required; b is required", err.Error())
}
