package usecase

import (
	"context"
	"io"
	"time"

	"dental-clinic-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// stubUserRepo is an in-memory UserRepository.
type stubUserRepo struct {
	users  map[uint]*entity.User
	nextID uint
	err    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*entity.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) error {
	if r.err != nil {
		return r.err
	}
	delete(r.users, id)
	return nil
}

// stubTokenStore tracks saved token ids in memory.
type stubTokenStore struct {
	saved   map[string]bool
	saveErr error
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{saved: make(map[string]bool)}
}

func (s *stubTokenStore) key(username, tokenID string) string {
	return username + ":" + tokenID
}

func (s *stubTokenStore) Save(_ context.Context, username, tokenID string, _ time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved[s.key(username, tokenID)] = true
	return nil
}

func (s *stubTokenStore) Exists(_ context.Context, username, tokenID string) (bool, error) {
	return s.saved[s.key(username, tokenID)], nil
}

func (s *stubTokenStore) Delete(_ context.Context, username, tokenID string) error {
	delete(s.saved, s.key(username, tokenID))
	return nil
}

// stubAuditService counts recorded actions; failures are out of scope here.
type stubAuditService struct {
	actions []string
}

func (s *stubAuditService) Record(_ context.Context, _ *uint, action string, _ string, _ string, _ map[string]interface{}) {
	s.actions = append(s.actions, action)
}

// stubPatientRepo is an in-memory PatientRepository.
type stubPatientRepo struct {
	patients map[uint]*entity.Patient
	nextID   uint
	err      error
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[uint]*entity.Patient), nextID: 1}
}

func (r *stubPatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	if r.err != nil {
		return r.err
	}
	patient.ID = r.nextID
	r.nextID++
	clone := *patient
	r.patients[patient.ID] = &clone
	return nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id uint) (*entity.Patient, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.patients[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) Update(_ context.Context, patient *entity.Patient) error {
	if r.err != nil {
		return r.err
	}
	clone := *patient
	r.patients[patient.ID] = &clone
	return nil
}

func (r *stubPatientRepo) Delete(_ context.Context, id uint) error {
	if r.err != nil {
		return r.err
	}
	delete(r.patients, id)
	return nil
}

// stubDentistRepo is an in-memory DentistRepository.
type stubDentistRepo struct {
	dentists map[uint]*entity.Dentist
	nextID   uint
}

func newStubDentistRepo() *stubDentistRepo {
	return &stubDentistRepo{dentists: make(map[uint]*entity.Dentist), nextID: 1}
}

func (r *stubDentistRepo) Create(_ context.Context, dentist *entity.Dentist) error {
	dentist.ID = r.nextID
	r.nextID++
	clone := *dentist
	r.dentists[dentist.ID] = &clone
	return nil
}

func (r *stubDentistRepo) FindByID(_ context.Context, id uint) (*entity.Dentist, error) {
	d, ok := r.dentists[id]
	if !ok {
		return nil, nil
	}
	clone := *d
	return &clone, nil
}

func (r *stubDentistRepo) Update(_ context.Context, dentist *entity.Dentist) error {
	clone := *dentist
	r.dentists[dentist.ID] = &clone
	return nil
}

func (r *stubDentistRepo) Delete(_ context.Context, id uint) error {
	delete(r.dentists, id)
	return nil
}

// stubAppointmentRepo is an in-memory AppointmentRepository.
type stubAppointmentRepo struct {
	appointments map[uint]*entity.Appointment
	nextID       uint
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[uint]*entity.Appointment), nextID: 1}
}

func (r *stubAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	appointment.ID = r.nextID
	r.nextID++
	clone := *appointment
	r.appointments[appointment.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id uint) (*entity.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (r *stubAppointmentRepo) FindByPatientID(_ context.Context, patientID uint) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, appointment *entity.Appointment) error {
	clone := *appointment
	r.appointments[appointment.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id uint) error {
	delete(r.appointments, id)
	return nil
}

// stubAvailabilityRepo is an in-memory AvailabilityRepository.
type stubAvailabilityRepo struct {
	windows map[uint]*entity.Availability
	nextID  uint
}

func newStubAvailabilityRepo() *stubAvailabilityRepo {
	return &stubAvailabilityRepo{windows: make(map[uint]*entity.Availability), nextID: 1}
}

func (r *stubAvailabilityRepo) Create(_ context.Context, availability *entity.Availability) error {
	availability.ID = r.nextID
	r.nextID++
	clone := *availability
	r.windows[availability.ID] = &clone
	return nil
}

func (r *stubAvailabilityRepo) FindByID(_ context.Context, id uint) (*entity.Availability, error) {
	a, ok := r.windows[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (r *stubAvailabilityRepo) FindByDentistID(_ context.Context, dentistID uint) ([]entity.Availability, error) {
	var result []entity.Availability
	for _, a := range r.windows {
		if a.DentistID == dentistID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (r *stubAvailabilityRepo) Update(_ context.Context, availability *entity.Availability) error {
	clone := *availability
	r.windows[availability.ID] = &clone
	return nil
}

func (r *stubAvailabilityRepo) Delete(_ context.Context, id uint) error {
	delete(r.windows, id)
	return nil
}

// stubBillingRepo is an in-memory BillingRepository.
type stubBillingRepo struct {
	records map[uint]*entity.Billing
	nextID  uint
}

func newStubBillingRepo() *stubBillingRepo {
	return &stubBillingRepo{records: make(map[uint]*entity.Billing), nextID: 1}
}

func (r *stubBillingRepo) Create(_ context.Context, billing *entity.Billing) error {
	billing.ID = r.nextID
	r.nextID++
	clone := *billing
	r.records[billing.ID] = &clone
	return nil
}

func (r *stubBillingRepo) FindByID(_ context.Context, id uint) (*entity.Billing, error) {
	b, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *stubBillingRepo) FindByPatientID(_ context.Context, patientID uint) ([]entity.Billing, error) {
	var result []entity.Billing
	for _, b := range r.records {
		if b.PatientID == patientID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (r *stubBillingRepo) Update(_ context.Context, billing *entity.Billing) error {
	clone := *billing
	r.records[billing.ID] = &clone
	return nil
}

func (r *stubBillingRepo) Delete(_ context.Context, id uint) error {
	delete(r.records, id)
	return nil
}

// stubInsuranceRepo is an in-memory InsuranceRepository.
type stubInsuranceRepo struct {
	policies map[uint]*entity.Insurance
	nextID   uint
}

func newStubInsuranceRepo() *stubInsuranceRepo {
	return &stubInsuranceRepo{policies: make(map[uint]*entity.Insurance), nextID: 1}
}

func (r *stubInsuranceRepo) Create(_ context.Context, insurance *entity.Insurance) error {
	insurance.ID = r.nextID
	r.nextID++
	clone := *insurance
	r.policies[insurance.ID] = &clone
	return nil
}

func (r *stubInsuranceRepo) FindByID(_ context.Context, id uint) (*entity.Insurance, error) {
	p, ok := r.policies[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *stubInsuranceRepo) Update(_ context.Context, insurance *entity.Insurance) error {
	clone := *insurance
	r.policies[insurance.ID] = &clone
	return nil
}

func (r *stubInsuranceRepo) Delete(_ context.Context, id uint) error {
	delete(r.policies, id)
	return nil
}

// stubReportRepo is an in-memory ReportRepository.
type stubReportRepo struct {
	reports map[uint]*entity.Report
	nextID  uint
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{reports: make(map[uint]*entity.Report), nextID: 1}
}

func (r *stubReportRepo) Create(_ context.Context, report *entity.Report) error {
	report.ID = r.nextID
	r.nextID++
	clone := *report
	r.reports[report.ID] = &clone
	return nil
}

func (r *stubReportRepo) FindByID(_ context.Context, id uint) (*entity.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	clone := *rep
	return &clone, nil
}

func (r *stubReportRepo) Update(_ context.Context, report *entity.Report) error {
	clone := *report
	r.reports[report.ID] = &clone
	return nil
}

func (r *stubReportRepo) Delete(_ context.Context, id uint) error {
	delete(r.reports, id)
	return nil
}

// stubNotificationRepo is an in-memory NotificationRepository.
type stubNotificationRepo struct {
	notifications map[uint]*entity.Notification
	nextID        uint
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[uint]*entity.Notification), nextID: 1}
}

func (r *stubNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	notification.ID = r.nextID
	r.nextID++
	clone := *notification
	r.notifications[notification.ID] = &clone
	return nil
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id uint) (*entity.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	clone := *n
	return &clone, nil
}

func (r *stubNotificationRepo) Update(_ context.Context, notification *entity.Notification) error {
	clone := *notification
	r.notifications[notification.ID] = &clone
	return nil
}

func (r *stubNotificationRepo) Delete(_ context.Context, id uint) error {
	delete(r.notifications, id)
	return nil
}

// seedUser inserts a minimal account row and returns its id.
func seedUser(r *stubUserRepo) uint {
	u := &entity.User{Username: "alice", Role: entity.RolePatient}
	_ = r.Create(context.Background(), u)
	return u.ID
}

// seedPatient inserts a minimal patient row and returns its id.
func seedPatient(r *stubPatientRepo) uint {
	p := &entity.Patient{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	_ = r.Create(context.Background(), p)
	return p.ID
}

// seedDentist inserts a minimal dentist row and returns its id.
func seedDentist(r *stubDentistRepo) uint {
	d := &entity.Dentist{FirstName: "Greg", LastName: "House"}
	_ = r.Create(context.Background(), d)
	return d.ID
}
