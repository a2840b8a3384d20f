package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"actor-catalog/internal/domains/actor/model"
	"actor-catalog/internal/shared/record"
)

// Querier is the subset of *pgxpool.Pool the store needs.
// Every call acquires a pooled connection and releases it before returning.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// postgresRepository implements Store over the normalized schema:
// actor(id, name, gender, dob, country_id) → country(id, name).
type postgresRepository struct {
	db Querier
}

// NewPostgresRepository creates a new actor repository instance
func NewPostgresRepository(db Querier) Store {
	return &postgresRepository{db: db}
}

type column struct {
	name string
	expr string
}

// actorColumns drives both the SELECT list and the record mapper.
var actorColumns = []column{
	{name: "id", expr: "a.id"},
	{name: "name", expr: "a.name"},
	{name: "gender", expr: "a.gender"},
	{name: "dob", expr: "to_char(a.dob, 'YYYY-MM-DD')"},
	{name: "country", expr: "c.name"},
}

var countryColumns = []column{
	{name: "id", expr: "c.id"},
	{name: "name", expr: "c.name"},
}

var (
	actorMapper   = record.NewMapper(columnNames(actorColumns)...)
	countryMapper = record.NewMapper(columnNames(countryColumns)...)

	actorProjection   = projection(actorColumns)
	countryProjection = projection(countryColumns)
)

func columnNames(cols []column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

func projection(cols []column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.expr + " AS " + pq.QuoteIdentifier(c.name)
	}
	return strings.Join(parts, ", ")
}

// ListAll retrieves all actors joined with their country name
func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Actor, error) {
	query := `
        SELECT ` + actorProjection + `
        FROM actor a
        JOIN country c ON c.id = a.country_id
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapStorage("list actors", err)
	}

	actors, err := collectActors(rows)
	if err != nil {
		return nil, wrapStorage("list actors", err)
	}
	return actors, nil
}

// FindByID retrieves a single actor; absent rows yield nil, nil
func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Actor, error) {
	query := `
        SELECT ` + actorProjection + `
        FROM actor a
        JOIN country c ON c.id = a.country_id
        WHERE a.id = $1
    `

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, wrapStorage("find actor", err)
	}

	actors, err := collectActors(rows)
	if err != nil {
		return nil, wrapStorage("find actor", err)
	}
	if len(actors) == 0 {
		return nil, nil
	}
	return &actors[0], nil
}

// Create inserts a new actor and reads it back through the same projection
func (r *postgresRepository) Create(ctx context.Context, a model.NewActor) (*model.Actor, error) {
	query := `
        WITH a AS (
            INSERT INTO actor (name, gender, dob, country_id)
            VALUES ($1, $2, $3::date, $4)
            RETURNING id, name, gender, dob, country_id
        )
        SELECT ` + actorProjection + `
        FROM a
        JOIN country c ON c.id = a.country_id
    `

	rows, err := r.db.Query(ctx, query,
		nullIfEmpty(a.Name),
		nullIfEmpty(a.Gender),
		nullIfEmpty(a.DOB),
		a.CountryID,
	)
	if err != nil {
		return nil, wrapStorage("create actor", err)
	}

	actors, err := collectActors(rows)
	if err != nil {
		return nil, wrapStorage("create actor", err)
	}
	if len(actors) != 1 {
		return nil, &model.StorageError{
			Op:  "create actor",
			Err: fmt.Errorf("%w: insert returned %d rows", model.ErrConstraint, len(actors)),
		}
	}
	return &actors[0], nil
}

// Update builds a SET list from the supplied fields only
func (r *postgresRepository) Update(ctx context.Context, id int64, changes model.ActorChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	var sets []string
	var args []any
	set := func(col, cast string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d%s", pq.QuoteIdentifier(col), len(args), cast))
	}

	if changes.Name != nil {
		set("name", "", *changes.Name)
	}
	if changes.Gender != nil {
		set("gender", "", *changes.Gender)
	}
	if changes.DOB != nil {
		set("dob", "::date", *changes.DOB)
	}
	if changes.CountryID != nil {
		set("country_id", "", *changes.CountryID)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE actor SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return wrapStorage("update actor", err)
	}

	log.Debug().Int64("actor_id", id).Int64("rows", tag.RowsAffected()).Msg("actor updated")
	return nil
}

// Delete removes an actor by id; missing ids are not an error
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM actor WHERE id = $1`, id)
	if err != nil {
		return wrapStorage("delete actor", err)
	}

	log.Debug().Int64("actor_id", id).Int64("rows", tag.RowsAffected()).Msg("actor deleted")
	return nil
}

// ListCountries returns the country lookup table sorted by name
func (r *postgresRepository) ListCountries(ctx context.Context) ([]model.Country, error) {
	query := `SELECT ` + countryProjection + ` FROM country c ORDER BY c.name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapStorage("list countries", err)
	}
	defer rows.Close()

	countries := []model.Country{}
	checked := false
	for rows.Next() {
		if !checked {
			if err := countryMapper.Check(fieldNames(rows.FieldDescriptions())); err != nil {
				return nil, wrapStorage("list countries", err)
			}
			checked = true
		}

		values, err := rows.Values()
		if err != nil {
			return nil, wrapStorage("list countries", err)
		}
		rec, err := countryMapper.Map(values)
		if err != nil {
			return nil, wrapStorage("list countries", err)
		}

		var c model.Country
		if c.ID, err = rec.Int64("id"); err != nil {
			return nil, wrapStorage("list countries", err)
		}
		if c.Name, err = rec.String("name"); err != nil {
			return nil, wrapStorage("list countries", err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorage("list countries", err)
	}

	return countries, nil
}

// ResolveCountryID performs a case-insensitive exact match on country name
func (r *postgresRepository) ResolveCountryID(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM country WHERE lower(name) = lower($1) ORDER BY id LIMIT 1`,
		strings.TrimSpace(name),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, wrapStorage("resolve country", err)
	}
	return id, true, nil
}

// collectActors maps every row through actorMapper and closes rows.
func collectActors(rows pgx.Rows) ([]model.Actor, error) {
	defer rows.Close()

	actors := []model.Actor{}
	checked := false
	for rows.Next() {
		if !checked {
			if err := actorMapper.Check(fieldNames(rows.FieldDescriptions())); err != nil {
				return nil, err
			}
			checked = true
		}

		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read actor row: %w", err)
		}
		rec, err := actorMapper.Map(values)
		if err != nil {
			return nil, err
		}
		a, err := actorFromRecord(rec)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actors, nil
}

func actorFromRecord(rec *record.Record) (model.Actor, error) {
	var a model.Actor
	var err error

	if a.ID, err = rec.Int64("id"); err != nil {
		return a, err
	}
	if a.Name, err = rec.String("name"); err != nil {
		return a, err
	}
	if a.Gender, err = rec.String("gender"); err != nil {
		return a, err
	}
	if a.DOB, err = rec.String("dob"); err != nil {
		return a, err
	}
	if a.Country, err = rec.String("country"); err != nil {
		return a, err
	}
	return a, nil
}

func fieldNames(fds []pgconn.FieldDescription) []string {
	names := make([]string, len(fds))
	for i, fd := range fds {
		names[i] = fd.Name
	}
	return names
}

// nullIfEmpty lets NOT NULL constraints reject missing values instead of storing "".
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// wrapStorage classifies driver errors. Connection failures are reported
// without their cause text because it can carry host and user details.
func wrapStorage(op string, err error) error {
	var se *model.StorageError
	if errors.As(err, &se) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return &model.StorageError{Op: op, Err: fmt.Errorf("%w (%s)", model.ErrInvalidReference, pgErr.ConstraintName)}
		case "23502", "23505", "23514", "22007", "22008", "22001": // not_null, unique, check, datetime format/overflow, too long
			return &model.StorageError{Op: op, Err: fmt.Errorf("%w: %s", model.ErrConstraint, pgErr.Message)}
		}
		return &model.StorageError{Op: op, Err: fmt.Errorf("postgres error %s: %s", pgErr.Code, pgErr.Message)}
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) ||
		pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		log.Error().Err(err).Str("op", op).Msg("database unavailable")
		return &model.StorageError{Op: op, Err: model.ErrUnavailable}
	}

	return &model.StorageError{Op: op, Err: err}
}
