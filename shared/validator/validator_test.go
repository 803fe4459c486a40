package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/validator"
)

type sampleRequest struct {
	RoomID  string `json:"room_id"  validate:"required"`
	CheckIn string `json:"check_in" validate:"required,stay_date"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			body:    `{"room_id":"r1","check_in":"2026-01-10"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"check_in":"2026-01-10"}`,
			wantErr: true,
		},
		{
			name:    "malformed date",
			body:    `{"room_id":"r1","check_in":"10-01-2026"}`,
			wantErr: true,
		},
		{
			name:    "invalid json",
			body:    `{"room_id":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-02-01", "stay_date"))
	assert.Error(t, validator.ValidateVar("not-a-date", "stay_date"))
}
