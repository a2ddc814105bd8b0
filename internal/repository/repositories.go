package repository

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert or update violates a unique index
var ErrDuplicate = errors.New("duplicate record")

// Repositories holds all repository instances
type Repositories struct {
	db *gorm.DB

	User         UserRepository
	Project      ProjectRepository
	Wing         WingRepository
	Unit         UnitRepository
	Booking      BookingRepository
	Client       ClientRepository
	Enquiry      EnquiryRepository
	FollowUp     FollowUpRepository
	Resource     ResourceRepository
	Stats        StatsRepository
	Notification NotificationRepository
	RefreshToken RefreshTokenRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		User:         NewUserRepository(db),
		Project:      NewProjectRepository(db),
		Wing:         NewWingRepository(db),
		Unit:         NewUnitRepository(db),
		Booking:      NewBookingRepository(db),
		Client:       NewClientRepository(db),
		Enquiry:      NewEnquiryRepository(db),
		FollowUp:     NewFollowUpRepository(db),
		Resource:     NewResourceRepository(db),
		Stats:        NewStatsRepository(db),
		Notification: NewNotificationRepository(db),
		RefreshToken: NewRefreshTokenRepository(db),
	}
}

// Transaction runs fn with repositories bound to a single database
// transaction. Returning an error from fn rolls every write back.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// isDuplicateKeyError reports a unique violation of constraintName. Dialects
// that translate driver errors only report gorm.ErrDuplicatedKey, which is
// accepted for any constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// ListQuery represents common query parameters
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}

// Order returns the ORDER BY clause for the query. Only columns listed in
// allowed are honoured; anything else falls back to defaultOrder.
func (q *ListQuery) Order(allowed []string, defaultOrder string) string {
	if q.SortBy == "" || !slices.Contains(allowed, q.SortBy) {
		return defaultOrder
	}
	if strings.EqualFold(q.SortDir, "desc") {
		return q.SortBy + " DESC"
	}
	return q.SortBy + " ASC"
}

// searchPattern builds a lowercase LIKE pattern for the search term
func (q *ListQuery) searchPattern() string {
	return "%" + strings.ToLower(q.Search) + "%"
}

func paginate(db *gorm.DB, q *ListQuery) *gorm.DB {
	if q.PerPage > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		db = db.Offset((page - 1) * q.PerPage).Limit(q.PerPage)
	}
	return db
}

// parseIDList reads a comma separated list of ids, skipping anything invalid
func parseIDList(s string) []uint {
	ids := make([]uint, 0)
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, uint(id))
		}
	}
	return ids
}

// FormatIDList is the inverse of parseIDList, used to build list filters
func FormatIDList(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ",")
}
