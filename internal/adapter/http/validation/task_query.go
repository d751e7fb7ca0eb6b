package validation

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
)

var ErrInvalidQueryParams = errors.New("invalid task query parameters")

const dateLayout = "2006-01-02"

// ParseTaskQuery builds a domain.TaskQuery from URL query parameters:
// author_id, assignee_id, from, to, offset (zero-based page index) and
// page_size. Whether author_id/assignee_id are mutually exclusive is a
// business rule and left to the service; this only checks syntax.
func ParseTaskQuery(values url.Values) (domain.TaskQuery, error) {
	query := domain.TaskQuery{}

	authorID, ok, err := parseOptionalID(values, "author_id")
	if err != nil {
		return domain.TaskQuery{}, err
	}
	if ok {
		query.AuthorID = &authorID
	}

	assigneeID, ok, err := parseOptionalID(values, "assignee_id")
	if err != nil {
		return domain.TaskQuery{}, err
	}
	if ok {
		query.AssigneeID = &assigneeID
	}

	query.From, err = parseDate(values, "from")
	if err != nil {
		return domain.TaskQuery{}, err
	}
	query.To, err = parseDate(values, "to")
	if err != nil {
		return domain.TaskQuery{}, err
	}

	query.Page, err = parseBoundedInt(values, "offset", 0)
	if err != nil {
		return domain.TaskQuery{}, err
	}
	query.PageSize, err = parseBoundedInt(values, "page_size", 1)
	if err != nil {
		return domain.TaskQuery{}, err
	}

	return query, nil
}

func parseOptionalID(values url.Values, key string) (uint64, bool, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false, ErrInvalidQueryParams
	}
	return id, true, nil
}

func parseDate(values url.Values, key string) (time.Time, error) {
	raw := values.Get(key)
	if raw == "" {
		return time.Time{}, ErrInvalidQueryParams
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidQueryParams
	}
	return date, nil
}

func parseBoundedInt(values url.Values, key string, min int) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, ErrInvalidQueryParams
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < min {
		return 0, ErrInvalidQueryParams
	}
	return value, nil
}
