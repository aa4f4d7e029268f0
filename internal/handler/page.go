package handler

import (
	"github.com/fernandarrocha/AV2-faculdade/internal/models"
	appErrors "github.com/fernandarrocha/AV2-faculdade/pkg/errors"
)

// Page carries the layout chrome shared by every authenticated screen.
type Page struct {
	Title     string
	Active    string
	User      models.User
	Successes []string
	Errors    []string
}

// noticeFor picks the user-facing message for a failed action. Local
// validation errors surface their own wording; backend and transport
// failures collapse into the action-specific fallback.
func noticeFor(err error, fallback string) string {
	appErr := appErrors.FromError(err)
	switch appErr.Code {
	case appErrors.ErrValidation.Code, appErrors.ErrEmptySelection.Code:
		return appErr.Message
	}
	return fallback
}
