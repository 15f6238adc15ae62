package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"deepsheep/pkg/db"
	"deepsheep/pkg/sheepshead"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Record is a row in the `hands` table
type Record struct {
	ID         uuid.UUID
	Seed       int64
	Rules      sheepshead.Rules
	Serialized []byte
	Rewards    []int64
	Picker     int
	Created    time.Time
}

const handsColumns = `id, seed, rules, serialized, rewards, picker, created`

// Archive stores finished hands
type Archive struct {
	db *sql.DB
}

// New returns an archive backed by the database
// If dbh is nil, the shared instance is used.
func New(dbh *sql.DB) *Archive {
	if dbh == nil {
		dbh = db.Instance()
	}

	return &Archive{db: dbh}
}

// NewRecord builds the record for a finished hand
func NewRecord(h *sheepshead.Hand) (*Record, error) {
	if !h.IsFinished() {
		return nil, ErrHandNotFinished
	}

	id, err := uuid.Parse(h.ID())
	if err != nil {
		return nil, err
	}

	serialized, err := h.Serialize()
	if err != nil {
		return nil, err
	}

	rewards, err := h.Rewards()
	if err != nil {
		return nil, err
	}

	r := &Record{
		ID:         id,
		Seed:       h.Seed(),
		Rules:      h.Rules(),
		Serialized: serialized,
		Rewards:    make([]int64, len(rewards)),
	}

	for i, reward := range rewards {
		r.Rewards[i] = int64(reward)
	}

	r.Picker, _ = h.Picker()
	return r, nil
}

// Hand restores the archived hand
func (r *Record) Hand(logger logrus.FieldLogger) (*sheepshead.Hand, error) {
	h, err := sheepshead.Deserialize(logger, r.Serialized)
	if err != nil {
		return nil, fmt.Errorf("could not restore hand %s: %w", r.ID, err)
	}

	return h, nil
}

// Save archives a finished hand
func (a *Archive) Save(ctx context.Context, h *sheepshead.Hand) (*Record, error) {
	r, err := NewRecord(h)
	if err != nil {
		return nil, err
	}

	rules, err := json.Marshal(r.Rules)
	if err != nil {
		return nil, err
	}

	const query = `
INSERT INTO hands (id, seed, rules, serialized, rewards, picker)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created`

	row := a.db.QueryRowContext(ctx, query, r.ID, r.Seed, rules, r.Serialized, pq.Array(r.Rewards), r.Picker)
	if err := row.Scan(&r.Created); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"handID": r.ID,
		"seed":   r.Seed,
	}).Debug("archived hand")

	return r, nil
}

// ByID returns an archived hand by its ID
func (a *Archive) ByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	const query = `
SELECT ` + handsColumns + `
FROM hands
WHERE id = $1`

	r, err := recordByRow(a.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	return r, err
}

// Recent returns up to limit of the most recently archived hands, newest first
func (a *Archive) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}

	const query = `
SELECT ` + handsColumns + `
FROM hands
ORDER BY created DESC, id
LIMIT $1`

	rows, err := a.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*Record, 0, limit)
	for rows.Next() {
		r, err := recordByRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

func recordByRow(row db.Scanner) (*Record, error) {
	var r Record
	var rules []byte

	if err := row.Scan(&r.ID, &r.Seed, &rules, &r.Serialized, pq.Array(&r.Rewards), &r.Picker, &r.Created); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rules, &r.Rules); err != nil {
		return nil, err
	}

	return &r, nil
}
