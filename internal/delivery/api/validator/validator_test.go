package validator

import (
	"strings"
	"testing"
	"time"

	domainerrors "workgroup/internal/domain/errors"
	"workgroup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       any
		wantDetails string
	}{
		{
			name:  "valid login",
			input: &usecase.LoginInput{Username: "ana", Password: "secret"},
		},
		{
			name:        "missing fields use json names",
			input:       &usecase.LoginInput{},
			wantDetails: "username: required; password: required",
		},
		{
			name:        "embedded profile is validated",
			input:       &usecase.RegisterOwnerInput{GroupName: "acme", Username: "owner", Password: "longenough", ProfileInput: usecase.ProfileInput{Email: "nope"}},
			wantDetails: "email: email",
		},
		{
			name:        "rule parameters are reported",
			input:       &usecase.CreateDeviceInput{WorkingGroupID: 1, DeviceUID: "ab"},
			wantDetails: "device_uid: min=3",
		},
		{
			name:        "status must be known",
			input:       &usecase.UpdateStatusInput{Status: "lost"},
			wantDetails: "status: oneof=received sent",
		},
		{
			name:  "security code at the column width",
			input: submitEvent(strings.Repeat("x", 255)),
		},
		{
			name:        "security code over the column width",
			input:       submitEvent(strings.Repeat("x", 256)),
			wantDetails: "security_code: max=255",
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(tt.input)
			if tt.wantDetails == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantDetails, appErr.Details())
		})
	}
}

func submitEvent(securityCode string) *usecase.SubmitEventInput {
	return &usecase.SubmitEventInput{
		RawNotification:       "Recibiste 10.00 de Ana",
		Name:                  "Ana",
		Amount:                10,
		SecurityCode:          securityCode,
		NotificationTimestamp: time.Now(),
	}
}
