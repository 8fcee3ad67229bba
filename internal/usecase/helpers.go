package usecase

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const pickupDateLayout = "2006-01-02"

var fieldValidator = validator.New()

// businessLocation is the timezone used for billing periods and payout days.
var businessLocation = loadBusinessLocation()

const defaultBusinessTimezone = "Europe/Paris"

func loadBusinessLocation() *time.Location {
	loc, err := time.LoadLocation(defaultBusinessTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SetBusinessTimezone overrides the business timezone. Call it once at
// startup, before any use case runs.
func SetBusinessTimezone(name string) error {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	businessLocation = loc
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	return email != "" && fieldValidator.Var(email, "required,email") == nil
}

// isValidPickupDate accepts YYYY-MM-DD dates from today onwards, in business time.
func isValidPickupDate(value string, now time.Time) bool {
	d, err := time.ParseInLocation(pickupDateLayout, strings.TrimSpace(value), businessLocation)
	if err != nil {
		return false
	}
	local := now.In(businessLocation)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, businessLocation)
	return !d.Before(today)
}

// monthStart returns the first instant of t's calendar month in business time.
func monthStart(t time.Time) time.Time {
	local := t.In(businessLocation)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, businessLocation)
}
