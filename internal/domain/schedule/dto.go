package schedule

import "github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"

type UpsertScheduleRequest struct {
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	Monday           bool   `json:"monday"`
	Tuesday          bool   `json:"tuesday"`
	Wednesday        bool   `json:"wednesday"`
	Thursday         bool   `json:"thursday"`
	Friday           bool   `json:"friday"`
	Saturday         bool   `json:"saturday"`
	Sunday           bool   `json:"sunday"`
	ToleranceMinutes int    `json:"tolerance_minutes"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidClock(r.StartTime)
	end, okEnd := validator.IsValidClock(r.EndTime)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required and must be HH:MM",
		})
	}
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required and must be HH:MM",
		})
	}
	if okStart && okEnd && end <= start {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}
	if r.ToleranceMinutes < 0 || r.ToleranceMinutes > 240 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must be between 0 and 240",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpsertScheduleRequest) ToEntity() WorkSchedule {
	return WorkSchedule{
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		Monday:           r.Monday,
		Tuesday:          r.Tuesday,
		Wednesday:        r.Wednesday,
		Thursday:         r.Thursday,
		Friday:           r.Friday,
		Saturday:         r.Saturday,
		Sunday:           r.Sunday,
		ToleranceMinutes: r.ToleranceMinutes,
	}
}
