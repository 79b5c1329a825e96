package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/agrilink/internal/domain"
	"github.com/spec-kit/agrilink/internal/repository"
)

func pgUniqueErr(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// In-memory repository fakes backing the service tests. They apply the same
// filter semantics the SQL implementations do, just over slices.

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) add(user domain.User) *domain.User {
	if user.ID == "" {
		r.nextID++
		user.ID = "user-" + strconv.Itoa(r.nextID)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().Add(time.Duration(-len(r.users)) * time.Minute)
	}
	stored := user
	r.users[user.ID] = &stored
	return &stored
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return pgUniqueErr("users_email_key")
		}
	}
	r.nextID++
	user.ID = "user-" + strconv.Itoa(r.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context, filter repository.UserFilter) ([]domain.User, int, error) {
	var matched []domain.User
	for _, user := range r.users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		if filter.Active != nil && user.Active != *filter.Active {
			continue
		}
		if filter.District != nil && user.District != *filter.District {
			continue
		}
		matched = append(matched, *user)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, len(matched), nil
}

func (r *fakeUserRepo) ListIDsByRole(_ context.Context, role domain.Role, limit int) ([]string, error) {
	var matched []*domain.User
	for _, user := range r.users {
		if user.Role == role && user.Active {
			matched = append(matched, user)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })
	ids := make([]string, 0, len(matched))
	for _, user := range matched {
		if limit > 0 && len(ids) >= limit {
			break
		}
		ids = append(ids, user.ID)
	}
	return ids, nil
}

type fakeAppointmentRepo struct {
	byID      map[string]*domain.Appointment
	nextID    int
	createErr error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: map[string]*domain.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	appt.ID = "appt-" + strconv.Itoa(r.nextID)
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	stored := *appt
	r.byID[appt.ID] = &stored
	return nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appt *domain.Appointment) error {
	if _, ok := r.byID[appt.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *appt
	r.byID[appt.ID] = &stored
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	appt, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *appt
	return &copied, nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, filter repository.AppointmentFilter) ([]domain.Appointment, int, error) {
	var matched []domain.Appointment
	for _, appt := range r.byID {
		if filter.FarmerID != nil && appt.FarmerID != *filter.FarmerID {
			continue
		}
		if filter.OfficerID != nil && appt.OfficerID != *filter.OfficerID {
			continue
		}
		if len(filter.Statuses) > 0 && !containsAppointmentStatus(filter.Statuses, appt.Status) {
			continue
		}
		matched = append(matched, *appt)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, len(matched), nil
}

func (r *fakeAppointmentRepo) CountActiveSlot(_ context.Context, officerID string, date time.Time, slot string) (int, error) {
	count := 0
	for _, appt := range r.byID {
		if appt.OfficerID == officerID && appt.Date.Equal(date) && appt.TimeSlot == slot &&
			appt.Status != domain.AppointmentStatusCancelled {
			count++
		}
	}
	return count, nil
}

func containsAppointmentStatus(statuses []domain.AppointmentStatus, status domain.AppointmentStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

type fakeSubmissionRepo struct {
	byID   map[string]*domain.CropSubmission
	nextID int
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{byID: map[string]*domain.CropSubmission{}}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, sub *domain.CropSubmission) error {
	r.nextID++
	sub.ID = "sub-" + strconv.Itoa(r.nextID)
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = sub.CreatedAt
	stored := *sub
	r.byID[sub.ID] = &stored
	return nil
}

func (r *fakeSubmissionRepo) Update(_ context.Context, sub *domain.CropSubmission) error {
	if _, ok := r.byID[sub.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *sub
	r.byID[sub.ID] = &stored
	return nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id string) (*domain.CropSubmission, error) {
	sub, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *sub
	return &copied, nil
}

func (r *fakeSubmissionRepo) List(_ context.Context, filter repository.SubmissionFilter) ([]domain.CropSubmission, int, error) {
	var matched []domain.CropSubmission
	for _, sub := range r.byID {
		if filter.FarmerID != nil && sub.FarmerID != *filter.FarmerID {
			continue
		}
		if filter.AssignedOfficerID != nil &&
			(sub.AssignedOfficerID == nil || *sub.AssignedOfficerID != *filter.AssignedOfficerID) {
			continue
		}
		matched = append(matched, *sub)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, len(matched), nil
}

type fakeNotificationRepo struct {
	byID   map[string]*domain.Notification
	nextID int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{byID: map[string]*domain.Notification{}}
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	r.nextID++
	n.ID = "notif-" + strconv.Itoa(r.nextID)
	n.CreatedAt = time.Now()
	stored := *n
	r.byID[n.ID] = &stored
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id string) (*domain.Notification, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *n
	return &copied, nil
}

func (r *fakeNotificationRepo) List(_ context.Context, filter repository.NotificationFilter) ([]domain.Notification, int, error) {
	var matched []domain.Notification
	for _, n := range r.byID {
		if n.RecipientID != filter.RecipientID {
			continue
		}
		if filter.UnreadOnly && n.Read {
			continue
		}
		matched = append(matched, *n)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, len(matched), nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, recipientID string) (int, error) {
	count := 0
	for _, n := range r.byID {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	n, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	n.Read = true
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, recipientID string) error {
	for _, n := range r.byID {
		if n.RecipientID == recipientID {
			n.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) forRecipient(recipientID string) []domain.Notification {
	items, _, _ := r.List(context.Background(), repository.NotificationFilter{RecipientID: recipientID})
	return items
}

type fakeFertilizerRepo struct {
	byID   map[string]*domain.FertilizerDistribution
	nextID int
}

func newFakeFertilizerRepo() *fakeFertilizerRepo {
	return &fakeFertilizerRepo{byID: map[string]*domain.FertilizerDistribution{}}
}

func (r *fakeFertilizerRepo) Create(_ context.Context, dist *domain.FertilizerDistribution) error {
	r.nextID++
	dist.ID = "dist-" + strconv.Itoa(r.nextID)
	dist.CreatedAt = time.Now()
	dist.UpdatedAt = dist.CreatedAt
	stored := *dist
	r.byID[dist.ID] = &stored
	return nil
}

func (r *fakeFertilizerRepo) Update(_ context.Context, dist *domain.FertilizerDistribution) error {
	if _, ok := r.byID[dist.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *dist
	r.byID[dist.ID] = &stored
	return nil
}

func (r *fakeFertilizerRepo) GetByID(_ context.Context, id string) (*domain.FertilizerDistribution, error) {
	dist, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *dist
	return &copied, nil
}

func (r *fakeFertilizerRepo) List(_ context.Context, filter repository.DistributionFilter) ([]domain.FertilizerDistribution, int, error) {
	var matched []domain.FertilizerDistribution
	for _, dist := range r.byID {
		if filter.FarmerID != nil && dist.FarmerID != *filter.FarmerID {
			continue
		}
		if filter.AssignedOfficerID != nil &&
			(dist.AssignedOfficerID == nil || *dist.AssignedOfficerID != *filter.AssignedOfficerID) {
			continue
		}
		if filter.FertilizerType != nil && dist.FertilizerType != *filter.FertilizerType {
			continue
		}
		matched = append(matched, *dist)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, len(matched), nil
}

type fakeDocumentRepo struct {
	byID   map[string]*domain.Document
	nextID int
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{byID: map[string]*domain.Document{}}
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *domain.Document) error {
	r.nextID++
	doc.ID = "doc-" + strconv.Itoa(r.nextID)
	doc.CreatedAt = time.Now()
	stored := *doc
	r.byID[doc.ID] = &stored
	return nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *doc
	return &copied, nil
}

// A set owner filter admits that farmer's documents plus ownerless public
// advisories, matching the SQL implementation.
func (r *fakeDocumentRepo) List(_ context.Context, filter repository.DocumentFilter) ([]domain.Document, int, error) {
	var matched []domain.Document
	for _, doc := range r.byID {
		if filter.OwnerFarmerID != nil &&
			doc.OwnerFarmerID != nil && *doc.OwnerFarmerID != *filter.OwnerFarmerID {
			continue
		}
		if filter.Category != nil && doc.Category != *filter.Category {
			continue
		}
		matched = append(matched, *doc)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, len(matched), nil
}

type fakeServiceRepo struct {
	byID   map[string]*domain.ServiceOffering
	nextID int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{byID: map[string]*domain.ServiceOffering{}}
}

func (r *fakeServiceRepo) Create(_ context.Context, svc *domain.ServiceOffering) error {
	r.nextID++
	svc.ID = "svc-" + strconv.Itoa(r.nextID)
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt
	stored := *svc
	r.byID[svc.ID] = &stored
	return nil
}

func (r *fakeServiceRepo) Update(_ context.Context, svc *domain.ServiceOffering) error {
	if _, ok := r.byID[svc.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *svc
	r.byID[svc.ID] = &stored
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*domain.ServiceOffering, error) {
	svc, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *svc
	return &copied, nil
}

func (r *fakeServiceRepo) List(_ context.Context, filter repository.ServiceFilter) ([]domain.ServiceOffering, int, error) {
	var matched []domain.ServiceOffering
	for _, svc := range r.byID {
		if filter.ActiveOnly && !svc.IsActive {
			continue
		}
		if filter.Category != nil && svc.Category != *filter.Category {
			continue
		}
		matched = append(matched, *svc)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, len(matched), nil
}

type staticPicker struct {
	ids []string
}

func (p *staticPicker) PickOfficers(_ context.Context, limit int) ([]string, error) {
	if limit > 0 && len(p.ids) > limit {
		return p.ids[:limit], nil
	}
	return p.ids, nil
}
