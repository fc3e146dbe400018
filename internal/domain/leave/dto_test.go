package leave

import (
	"testing"

	"github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaveRequestRequest_ValidFerie(t *testing.T) {
	req := CreateLeaveRequestRequest{
		Type:     "ferie",
		DateFrom: "2026-07-01",
		DateTo:   "2026-07-05",
	}

	assert.NoError(t, req.Validate())

	entity := req.ToEntity()
	assert.Equal(t, TypeFerie, entity.Type)
	assert.Equal(t, StatusPending, entity.Status)
	assert.Equal(t, 5, entity.DayCount())
	assert.Nil(t, entity.Day)
}

func TestCreateLeaveRequestRequest_ValidPermesso(t *testing.T) {
	req := CreateLeaveRequestRequest{
		Type:     "permesso",
		Day:      "2026-07-01",
		TimeFrom: "09:00",
		TimeTo:   "11:00",
	}

	assert.NoError(t, req.Validate())

	entity := req.ToEntity()
	assert.Equal(t, TypePermesso, entity.Type)
	assert.Equal(t, 1, entity.DayCount())
	assert.Nil(t, entity.DateFrom)
}

func TestCreateLeaveRequestRequest_FerieWithTimeFieldsRejected(t *testing.T) {
	req := CreateLeaveRequestRequest{
		Type:     "ferie",
		DateFrom: "2026-07-01",
		DateTo:   "2026-07-05",
		TimeFrom: "09:00",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "day")
}

func TestCreateLeaveRequestRequest_PermessoWithDateRangeRejected(t *testing.T) {
	req := CreateLeaveRequestRequest{
		Type:     "permesso",
		Day:      "2026-07-01",
		TimeFrom: "09:00",
		TimeTo:   "11:00",
		DateFrom: "2026-07-01",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "date_from")
}

func TestCreateLeaveRequestRequest_UnknownTypeRejected(t *testing.T) {
	req := CreateLeaveRequestRequest{Type: "malattia"}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "type")
}

func TestCreateLeaveRequestRequest_ReversedRangesRejected(t *testing.T) {
	ferie := CreateLeaveRequestRequest{
		Type:     "ferie",
		DateFrom: "2026-07-05",
		DateTo:   "2026-07-01",
	}
	assert.Error(t, ferie.Validate())

	permesso := CreateLeaveRequestRequest{
		Type:     "permesso",
		Day:      "2026-07-01",
		TimeFrom: "11:00",
		TimeTo:   "09:00",
	}
	assert.Error(t, permesso.Validate())
}

func TestManualLeaveEntryRequest_RequiresUserID(t *testing.T) {
	req := ManualLeaveEntryRequest{
		Type:     "ferie",
		DateFrom: "2026-07-01",
		DateTo:   "2026-07-01",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "user_id")
}

func TestManualLeaveEntryRequest_ToEntityIsApproved(t *testing.T) {
	note := "backfilled"
	req := ManualLeaveEntryRequest{
		UserID:    "u1",
		Type:      "ferie",
		DateFrom:  "2026-07-01",
		DateTo:    "2026-07-02",
		AdminNote: &note,
	}

	require.NoError(t, req.Validate())

	entity := req.ToEntity()
	assert.Equal(t, StatusApproved, entity.Status)
	assert.Equal(t, &note, entity.AdminNote)
}
