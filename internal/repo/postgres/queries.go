package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/Alijeyrad/dental_backend/internal/repo"
)

const (
	clientsTable             = "clients"
	servicesTable            = "services"
	appointmentsTable        = "appointments"
	appointmentServicesTable = "appointment_services"
)

var (
	clientColumns      = []string{"id", "first_name", "last_name", "email", "phone", "date_of_birth", "address", "emergency_contact", "medical_history"}
	serviceColumns     = []string{"id", "name", "description", "price", "duration"}
	appointmentColumns = []string{"id", "client_id", "date", "time", "status", "notes"}
	linkColumns        = []string{"id", "appointment_id", "service_id"}
)

// queries runs statements on either the pooled driver or a transaction.
type queries struct {
	ex dialect.ExecQuerier
}

var _ repo.Queries = (*queries)(nil)

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.Postgres)
}

func selectFrom(table string, columns []string) *entsql.Selector {
	return builder().Select(columns...).From(entsql.Table(table))
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

type scanner interface {
	Scan(dest ...any) error
}

// queryRows runs a SELECT and calls scan once per row.
func (q *queries) queryRows(ctx context.Context, query string, args []any, scan func(scanner) error) error {
	var rows entsql.Rows
	if err := q.ex.Query(ctx, query, args, &rows); err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(&rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// insertReturningID runs an INSERT ... RETURNING "id".
func (q *queries) insertReturningID(ctx context.Context, b *entsql.InsertBuilder) (int64, error) {
	query, args := b.Returning("id").Query()
	var id int64
	found := false
	err := q.queryRows(ctx, query, args, func(s scanner) error {
		found = true
		return s.Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("insert returned no id")
	}
	return id, nil
}

// dateArg sends DATE values as text so the session time zone cannot shift
// the calendar day.
func dateArg(t time.Time) string {
	return t.Format(repo.DateLayout)
}

func nullableDateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return dateArg(*t)
}

func (q *queries) exec(ctx context.Context, query string, args []any) (int64, error) {
	var res sql.Result
	if err := q.ex.Exec(ctx, query, args, &res); err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// --- clients ---

func scanClient(s scanner) (*repo.Client, error) {
	var (
		c         repo.Client
		dob       sql.NullTime
		address   sql.NullString
		emergency sql.NullString
		history   sql.NullString
	)
	if err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &dob, &address, &emergency, &history); err != nil {
		return nil, err
	}
	if dob.Valid {
		t := dayUTC(dob.Time)
		c.DateOfBirth = &t
	}
	c.Address = nullString(address)
	c.EmergencyContact = nullString(emergency)
	c.MedicalHistory = nullString(history)
	return &c, nil
}

func dayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func (q *queries) listClients(ctx context.Context, sel *entsql.Selector) ([]*repo.Client, error) {
	query, args := sel.OrderBy("id").Query()
	var out []*repo.Client
	err := q.queryRows(ctx, query, args, func(s scanner) error {
		c, err := scanClient(s)
		if err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

func (q *queries) firstClient(ctx context.Context, sel *entsql.Selector) (*repo.Client, error) {
	list, err := q.listClients(ctx, sel.Limit(1))
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (q *queries) CreateClient(ctx context.Context, c *repo.Client) error {
	id, err := q.insertReturningID(ctx, builder().Insert(clientsTable).
		Columns("first_name", "last_name", "email", "phone", "date_of_birth", "address", "emergency_contact", "medical_history").
		Values(c.FirstName, c.LastName, c.Email, c.Phone, nullableDateArg(c.DateOfBirth), c.Address, c.EmergencyContact, c.MedicalHistory))
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	c.ID = id
	return nil
}

func (q *queries) GetClient(ctx context.Context, id int64) (*repo.Client, error) {
	c, err := q.firstClient(ctx, selectFrom(clientsTable, clientColumns).Where(entsql.EQ("id", id)))
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("client %d: %w", id, repo.ErrNotFound)
	}
	return c, nil
}

func (q *queries) ListClients(ctx context.Context) ([]*repo.Client, error) {
	list, err := q.listClients(ctx, selectFrom(clientsTable, clientColumns))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return list, nil
}

func (q *queries) ClientsByIDs(ctx context.Context, ids []int64) (map[int64]*repo.Client, error) {
	out := make(map[int64]*repo.Client, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	list, err := q.listClients(ctx, selectFrom(clientsTable, clientColumns).Where(entsql.In("id", int64Args(ids)...)))
	if err != nil {
		return nil, fmt.Errorf("clients by ids: %w", err)
	}
	for _, c := range list {
		out[c.ID] = c
	}
	return out, nil
}

func (q *queries) FindClientByIdentity(ctx context.Context, email, firstName, lastName string) (*repo.Client, error) {
	c, err := q.firstClient(ctx, selectFrom(clientsTable, clientColumns).Where(entsql.And(
		entsql.EQ("email", email),
		entsql.EQ("first_name", firstName),
		entsql.EQ("last_name", lastName),
	)))
	if err != nil {
		return nil, fmt.Errorf("find client by identity: %w", err)
	}
	return c, nil
}

func (q *queries) FindClientByEmail(ctx context.Context, email string) (*repo.Client, error) {
	c, err := q.firstClient(ctx, selectFrom(clientsTable, clientColumns).Where(entsql.EQ("email", email)))
	if err != nil {
		return nil, fmt.Errorf("find client by email: %w", err)
	}
	return c, nil
}

// --- services ---

func scanService(s scanner) (*repo.Service, error) {
	var svc repo.Service
	if err := s.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Price, &svc.Duration); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (q *queries) listServices(ctx context.Context, sel *entsql.Selector) ([]*repo.Service, error) {
	query, args := sel.OrderBy("id").Query()
	var out []*repo.Service
	err := q.queryRows(ctx, query, args, func(s scanner) error {
		svc, err := scanService(s)
		if err != nil {
			return err
		}
		out = append(out, svc)
		return nil
	})
	return out, err
}

func (q *queries) CreateService(ctx context.Context, s *repo.Service) error {
	id, err := q.insertReturningID(ctx, builder().Insert(servicesTable).
		Columns("name", "description", "price", "duration").
		Values(s.Name, s.Description, s.Price, s.Duration))
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	s.ID = id
	return nil
}

func (q *queries) GetService(ctx context.Context, id int64) (*repo.Service, error) {
	list, err := q.listServices(ctx, selectFrom(servicesTable, serviceColumns).Where(entsql.EQ("id", id)).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("service %d: %w", id, repo.ErrNotFound)
	}
	return list[0], nil
}

func (q *queries) ListServices(ctx context.Context) ([]*repo.Service, error) {
	list, err := q.listServices(ctx, selectFrom(servicesTable, serviceColumns))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return list, nil
}

func (q *queries) ServicesByIDs(ctx context.Context, ids []int64) (map[int64]*repo.Service, error) {
	out := make(map[int64]*repo.Service, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	list, err := q.listServices(ctx, selectFrom(servicesTable, serviceColumns).Where(entsql.In("id", int64Args(ids)...)))
	if err != nil {
		return nil, fmt.Errorf("services by ids: %w", err)
	}
	for _, s := range list {
		out[s.ID] = s
	}
	return out, nil
}

func (q *queries) FindServiceByName(ctx context.Context, name string) (*repo.Service, error) {
	list, err := q.listServices(ctx, selectFrom(servicesTable, serviceColumns).Where(entsql.EQ("name", name)).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("find service by name: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// --- appointments ---

func scanAppointment(s scanner) (*repo.Appointment, error) {
	var (
		a      repo.Appointment
		date   time.Time
		status string
		notes  sql.NullString
	)
	if err := s.Scan(&a.ID, &a.ClientID, &date, &a.Time, &status, &notes); err != nil {
		return nil, err
	}
	a.Date = dayUTC(date)
	a.Status = repo.Status(status)
	a.Notes = nullString(notes)
	return &a, nil
}

func (q *queries) listAppointments(ctx context.Context, sel *entsql.Selector) ([]*repo.Appointment, error) {
	query, args := sel.OrderBy("id").Query()
	var out []*repo.Appointment
	err := q.queryRows(ctx, query, args, func(s scanner) error {
		a, err := scanAppointment(s)
		if err != nil {
			return err
		}
		out = append(out, a)
		return nil
	})
	return out, err
}

func (q *queries) CreateAppointment(ctx context.Context, a *repo.Appointment) error {
	id, err := q.insertReturningID(ctx, builder().Insert(appointmentsTable).
		Columns("client_id", "date", "time", "status", "notes").
		Values(a.ClientID, dateArg(a.Date), a.Time, string(a.Status), a.Notes))
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	a.ID = id
	return nil
}

func (q *queries) GetAppointment(ctx context.Context, id int64) (*repo.Appointment, error) {
	list, err := q.listAppointments(ctx, selectFrom(appointmentsTable, appointmentColumns).Where(entsql.EQ("id", id)).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("appointment %d: %w", id, repo.ErrNotFound)
	}
	return list[0], nil
}

func (q *queries) ListAppointments(ctx context.Context) ([]*repo.Appointment, error) {
	list, err := q.listAppointments(ctx, selectFrom(appointmentsTable, appointmentColumns))
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return list, nil
}

func (q *queries) AppointmentsByClients(ctx context.Context, clientIDs []int64) ([]*repo.Appointment, error) {
	if len(clientIDs) == 0 {
		return nil, nil
	}
	list, err := q.listAppointments(ctx, selectFrom(appointmentsTable, appointmentColumns).Where(entsql.In("client_id", int64Args(clientIDs)...)))
	if err != nil {
		return nil, fmt.Errorf("appointments by clients: %w", err)
	}
	return list, nil
}

func (q *queries) UpdateAppointment(ctx context.Context, a *repo.Appointment) error {
	query, args := builder().Update(appointmentsTable).
		Set("date", dateArg(a.Date)).
		Set("time", a.Time).
		Set("status", string(a.Status)).
		Set("notes", a.Notes).
		Where(entsql.EQ("id", a.ID)).
		Query()
	n, err := q.exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("appointment %d: %w", a.ID, repo.ErrNotFound)
	}
	return nil
}

func (q *queries) DeleteAppointment(ctx context.Context, id int64) error {
	query, args := builder().Delete(appointmentsTable).Where(entsql.EQ("id", id)).Query()
	n, err := q.exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("appointment %d: %w", id, repo.ErrNotFound)
	}
	return nil
}

func (q *queries) CountAppointments(ctx context.Context) (int, error) {
	query, args := builder().Select(entsql.Count("*")).From(entsql.Table(appointmentsTable)).Query()
	var n int
	err := q.queryRows(ctx, query, args, func(s scanner) error { return s.Scan(&n) })
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return n, nil
}

// --- appointment services ---

func (q *queries) listLinks(ctx context.Context, sel *entsql.Selector) ([]*repo.AppointmentService, error) {
	query, args := sel.OrderBy("id").Query()
	var out []*repo.AppointmentService
	err := q.queryRows(ctx, query, args, func(s scanner) error {
		var l repo.AppointmentService
		if err := s.Scan(&l.ID, &l.AppointmentID, &l.ServiceID); err != nil {
			return err
		}
		out = append(out, &l)
		return nil
	})
	return out, err
}

func (q *queries) CreateAppointmentService(ctx context.Context, l *repo.AppointmentService) error {
	id, err := q.insertReturningID(ctx, builder().Insert(appointmentServicesTable).
		Columns("appointment_id", "service_id").
		Values(l.AppointmentID, l.ServiceID))
	if err != nil {
		return fmt.Errorf("insert appointment service: %w", err)
	}
	l.ID = id
	return nil
}

func (q *queries) LinksByAppointments(ctx context.Context, appointmentIDs []int64) ([]*repo.AppointmentService, error) {
	if len(appointmentIDs) == 0 {
		return nil, nil
	}
	list, err := q.listLinks(ctx, selectFrom(appointmentServicesTable, linkColumns).Where(entsql.In("appointment_id", int64Args(appointmentIDs)...)))
	if err != nil {
		return nil, fmt.Errorf("links by appointments: %w", err)
	}
	return list, nil
}

func (q *queries) LinksByServices(ctx context.Context, serviceIDs []int64) ([]*repo.AppointmentService, error) {
	if len(serviceIDs) == 0 {
		return nil, nil
	}
	list, err := q.listLinks(ctx, selectFrom(appointmentServicesTable, linkColumns).Where(entsql.In("service_id", int64Args(serviceIDs)...)))
	if err != nil {
		return nil, fmt.Errorf("links by services: %w", err)
	}
	return list, nil
}

func (q *queries) DeleteLinksByAppointment(ctx context.Context, appointmentID int64) (int64, error) {
	query, args := builder().Delete(appointmentServicesTable).Where(entsql.EQ("appointment_id", appointmentID)).Query()
	n, err := q.exec(ctx, query, args)
	if err != nil {
		return 0, fmt.Errorf("delete appointment services: %w", err)
	}
	return n, nil
}
