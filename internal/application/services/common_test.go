package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rabbitmq/amqp091-go"

	"hospital-manager-api/internal/application/ports"
	"hospital-manager-api/internal/infrastructure/mq"
)

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"})
}

func counterValue(c *prometheus.CounterVec, label string) float64 {
	return testutil.ToFloat64(c.WithLabelValues(label))
}

// stubTx satisfies pgx.Tx so the delete sagas can run against fake
// repositories. Only Commit and Rollback matter.
type stubTx struct {
	committed  bool
	rolledBack bool
}

func (t *stubTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }
func (t *stubTx) Commit(_ context.Context) error {
	t.committed = true
	return nil
}
func (t *stubTx) Rollback(_ context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}
func (t *stubTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not implemented")
}
func (t *stubTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects                             { return pgx.LargeObjects{} }
func (t *stubTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("not implemented")
}
func (t *stubTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *stubTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}
func (t *stubTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row { return nil }
func (t *stubTx) Conn() *pgx.Conn                                        { return nil }

// FakeRabbit buffers published events so tests can assert on them without a
// broker.
type FakeRabbit struct {
	in chan mq.Event
}

func NewFakeRabbit() *FakeRabbit {
	return &FakeRabbit{in: make(chan mq.Event, 16)}
}

func (f *FakeRabbit) Connect(_ context.Context, _ string) error { return nil }
func (f *FakeRabbit) Init() error                               { return nil }
func (f *FakeRabbit) PublisherWorker(_ context.Context)         {}
func (f *FakeRabbit) GetInputChan() chan mq.Event               { return f.in }
func (f *FakeRabbit) GetConn() *amqp091.Connection              { return nil }

// Events drains everything published so far.
func (f *FakeRabbit) Events() []mq.Event {
	var out []mq.Event
	for {
		select {
		case e := <-f.in:
			out = append(out, e)
		default:
			return out
		}
	}
}

type FakeIdentityClient struct {
	RegisterFunc               func(ctx context.Context, req ports.RegisterUserRequest) (*ports.RemoteUser, error)
	GetUserByIDFunc            func(ctx context.Context, id uint64, includeDisabled bool) (*ports.RemoteUser, error)
	DeleteUserFunc             func(ctx context.Context, id uint64, hard bool) error
	ExistsUserByIDFunc         func(ctx context.Context, id uint64) (bool, error)
	HasActiveUsersInCenterFunc func(ctx context.Context, centerID uint64) (bool, error)
}

func (f *FakeIdentityClient) Register(ctx context.Context, req ports.RegisterUserRequest) (*ports.RemoteUser, error) {
	if f.RegisterFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RegisterFunc(ctx, req)
}
func (f *FakeIdentityClient) GetUserByID(ctx context.Context, id uint64, includeDisabled bool) (*ports.RemoteUser, error) {
	if f.GetUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetUserByIDFunc(ctx, id, includeDisabled)
}
func (f *FakeIdentityClient) DeleteUser(ctx context.Context, id uint64, hard bool) error {
	if f.DeleteUserFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteUserFunc(ctx, id, hard)
}
func (f *FakeIdentityClient) ExistsUserByID(ctx context.Context, id uint64) (bool, error) {
	if f.ExistsUserByIDFunc == nil {
		return false, errors.New("not used")
	}
	return f.ExistsUserByIDFunc(ctx, id)
}
func (f *FakeIdentityClient) HasActiveUsersInCenter(ctx context.Context, centerID uint64) (bool, error) {
	if f.HasActiveUsersInCenterFunc == nil {
		return false, errors.New("not used")
	}
	return f.HasActiveUsersInCenterFunc(ctx, centerID)
}

type FakeConsultingClient struct {
	HasFutureAppointmentsFunc         func(ctx context.Context, doctorID uint64) (bool, error)
	HasActiveAppointmentsInCenterFunc func(ctx context.Context, centerID uint64) (bool, error)
	HasActivePatientsInCenterFunc     func(ctx context.Context, centerID uint64) (bool, error)
}

func (f *FakeConsultingClient) HasFutureAppointments(ctx context.Context, doctorID uint64) (bool, error) {
	if f.HasFutureAppointmentsFunc == nil {
		return false, errors.New("not used")
	}
	return f.HasFutureAppointmentsFunc(ctx, doctorID)
}
func (f *FakeConsultingClient) HasActiveAppointmentsInCenter(ctx context.Context, centerID uint64) (bool, error) {
	if f.HasActiveAppointmentsInCenterFunc == nil {
		return false, errors.New("not used")
	}
	return f.HasActiveAppointmentsInCenterFunc(ctx, centerID)
}
func (f *FakeConsultingClient) HasActivePatientsInCenter(ctx context.Context, centerID uint64) (bool, error) {
	if f.HasActivePatientsInCenterFunc == nil {
		return false, errors.New("not used")
	}
	return f.HasActivePatientsInCenterFunc(ctx, centerID)
}

type FakeAdminClient struct {
	ValidateCenterIDFunc func(ctx context.Context, id uint64) error
	ExistsDoctorByIDFunc func(ctx context.Context, id uint64) (bool, error)
}

func (f *FakeAdminClient) ValidateCenterID(ctx context.Context, id uint64) error {
	if f.ValidateCenterIDFunc == nil {
		return errors.New("not used")
	}
	return f.ValidateCenterIDFunc(ctx, id)
}
func (f *FakeAdminClient) ExistsDoctorByID(ctx context.Context, id uint64) (bool, error) {
	if f.ExistsDoctorByIDFunc == nil {
		return false, errors.New("not used")
	}
	return f.ExistsDoctorByIDFunc(ctx, id)
}
