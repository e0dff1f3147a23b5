package pomodoro

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/mmcdole/pomo/internal/domain"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// ParseSettings validates the two raw form values. Both fields are checked
// independently; on failure the returned *domain.ValidationError carries an
// entry per offending field and the caller must leave its state unchanged.
func ParseSettings(minutes, seconds string) (domain.Settings, error) {
	verr := &domain.ValidationError{}

	m, err := parseField(minutes)
	if err != nil {
		verr.Add(domain.FieldMinutes, err)
	}
	s, err := parseField(seconds)
	if err != nil {
		verr.Add(domain.FieldSeconds, err)
	}

	if !verr.Empty() {
		return domain.Settings{}, verr
	}
	return domain.Settings{Minutes: m, Seconds: s}, nil
}

func parseField(raw string) (int, error) {
	if raw == "" {
		return 0, domain.ErrFieldRequired
	}
	if !digitsOnly.MatchString(raw) {
		return 0, domain.ErrFieldNotDigits
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, domain.ErrFieldOutOfRange
		}
		return 0, err
	}
	return n, nil
}
