package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/pkg/apperror"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

// postgresProfileRepo stores profiles as one row each, with the embedded
// substructures (education, skills, projects, work, links) in JSONB columns.
// Email uniqueness is enforced by the unique index on profiles(email).
type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const profileColumns = "id, name, email, education, skills, projects, work, links, created_at, updated_at"

type profileDocs struct {
	education []byte
	skills    []byte
	projects  []byte
	work      []byte
	links     []byte
}

// marshalArray encodes a slice for a JSONB array column. A nil slice would
// encode as JSON null, and the array operations the query engine runs over
// these columns reject scalars, so nil is stored as an empty array.
func marshalArray(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

func marshalProfileDocs(p *profile.Profile) (*profileDocs, error) {
	docs := &profileDocs{}
	var err error

	if docs.education, err = marshalArray(p.Education); err != nil {
		return nil, apperror.NewInternal("failed to marshal education", err)
	}
	if docs.skills, err = marshalArray(p.Skills); err != nil {
		return nil, apperror.NewInternal("failed to marshal skills", err)
	}
	if docs.projects, err = marshalArray(p.Projects); err != nil {
		return nil, apperror.NewInternal("failed to marshal projects", err)
	}
	if docs.work, err = marshalArray(p.Work); err != nil {
		return nil, apperror.NewInternal("failed to marshal work", err)
	}
	if docs.links, err = json.Marshal(p.Links); err != nil {
		return nil, apperror.NewInternal("failed to marshal links", err)
	}
	return docs, nil
}

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	docs := &profileDocs{}

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&docs.education,
		&docs.skills,
		&docs.projects,
		&docs.work,
		&docs.links,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}

	// A malformed stored document aborts the whole read.
	if err := json.Unmarshal(docs.education, &p.Education); err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("malformed education document for profile %s", p.ID), err)
	}
	if err := json.Unmarshal(docs.skills, &p.Skills); err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("malformed skills document for profile %s", p.ID), err)
	}
	if err := json.Unmarshal(docs.projects, &p.Projects); err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("malformed projects document for profile %s", p.ID), err)
	}
	if err := json.Unmarshal(docs.work, &p.Work); err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("malformed work document for profile %s", p.ID), err)
	}
	if err := json.Unmarshal(docs.links, &p.Links); err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("malformed links document for profile %s", p.ID), err)
	}

	return p, nil
}

func scanProfiles(rows pgx.Rows) ([]*profile.Profile, error) {
	defer rows.Close()
	profiles := make([]*profile.Profile, 0)

	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profile rows", err)
	}
	return profiles, nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	docs, err := marshalProfileDocs(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO profiles (id, name, email, education, skills, projects, work, links, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Name, p.Email,
		docs.education, docs.skills, docs.projects, docs.work, docs.links,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewDuplicate("profile", "email", p.Email)
		}
		return apperror.NewInternal("failed to save profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("profile", id.String())
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) FindAll(ctx context.Context) ([]*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query profiles", err)
	}
	return scanProfiles(rows)
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	docs, err := marshalProfileDocs(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE profiles SET
			name = $2, email = $3, education = $4, skills = $5,
			projects = $6, work = $7, links = $8, updated_at = $9
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Email,
		docs.education, docs.skills, docs.projects, docs.work, docs.links,
		p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewDuplicate("profile", "email", p.Email)
		}
		return apperror.NewInternal("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", p.ID.String())
	}
	return nil
}

func (r *postgresProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM profiles WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", id.String())
	}
	r.logger.Info("Deleted profile", zap.String("profile_id", id.String()))
	return nil
}
