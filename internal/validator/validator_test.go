package validator

import (
	"testing"

	"geekku_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCompany() dto.JoinCompanyRequest {
	return dto.JoinCompanyRequest{
		Username:    "broker01",
		Password:    "pass1234",
		Type:        "estate",
		CompanyName: "Geekku Realty",
		Phone:       "010-1234-5678",
	}
}

func TestCompanyTypeRule(t *testing.T) {
	v := New()

	req := validCompany()
	assert.NoError(t, v.Validate(&req))

	req.Type = "interior"
	assert.NoError(t, v.Validate(&req))

	req.Type = "hotel"
	err := v.Validate(&req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "type")
}

func TestPhoneRule(t *testing.T) {
	v := New()

	for _, phone := range []string{"010-1234-5678", "01012345678", "02-123-4567"} {
		req := validCompany()
		req.Phone = phone
		assert.NoError(t, v.Validate(&req), phone)
	}

	req := validCompany()
	req.Phone = "call me"
	err := v.Validate(&req)
	require.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "phone")
}

func TestRequiredWithout(t *testing.T) {
	v := New()

	assert.Error(t, v.Validate(&dto.SendCodeRequest{}))
	assert.NoError(t, v.Validate(&dto.SendCodeRequest{Phone: "01012345678"}))
	assert.NoError(t, v.Validate(&dto.SendCodeRequest{Email: "a@b.kr"}))
}

func TestFormTagNames(t *testing.T) {
	v := New()

	err := v.Validate(&dto.UpdateCommunityRequest{})
	require.Error(t, err)
	assert.Contains(t, err.(*ValidationError).Errors, "title")
}
