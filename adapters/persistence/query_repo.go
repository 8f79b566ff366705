package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/internal/domain/query"
	"github.com/namdhoang/portfolio-hub/pkg/apperror"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

// postgresQueryRepo backs the query engine: scans, the skill aggregation and
// free-text search over the profile collection.
type postgresQueryRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresQueryRepo(db *pgxpool.Pool, logger logger.Logger) query.Repository {
	return &postgresQueryRepo{db: db, logger: logger}
}

var psqlQuery = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresQueryRepo) ListProfileProjects(ctx context.Context) ([]query.ProfileProjects, error) {
	builder := psqlQuery.Select("id", "name", "projects").
		From("profiles").
		OrderBy("created_at", "id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project listing query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query profile projects", err)
	}
	defer rows.Close()

	results := make([]query.ProfileProjects, 0)
	for rows.Next() {
		var pp query.ProfileProjects
		var projectsBytes []byte
		if err := rows.Scan(&pp.ProfileID, &pp.ProfileName, &projectsBytes); err != nil {
			return nil, apperror.NewInternal("failed to scan profile projects row", err)
		}
		if err := json.Unmarshal(projectsBytes, &pp.Projects); err != nil {
			return nil, apperror.NewInternal(fmt.Sprintf("malformed projects document for profile %s", pp.ProfileID), err)
		}
		results = append(results, pp)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profile projects", err)
	}
	return results, nil
}

// TopSkills unnests the skills arrays, counts per exact stored value and
// ranks descending. Ties beyond the ordered count are left to the database.
func (r *postgresQueryRepo) TopSkills(ctx context.Context, limit int) ([]query.SkillCount, error) {
	sql := `
		SELECT s.skill, COUNT(*) AS count
		FROM profiles, jsonb_array_elements_text(profiles.skills) AS s(skill)
		GROUP BY s.skill
		ORDER BY count DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		r.logger.Error("skill aggregation query failed", err, zap.Int("limit", limit))
		return nil, apperror.NewInternal("failed to execute skill aggregation", err)
	}
	defer rows.Close()

	results := make([]query.SkillCount, 0)
	for rows.Next() {
		var sc query.SkillCount
		if err := rows.Scan(&sc.Skill, &sc.Count); err != nil {
			return nil, apperror.NewInternal("failed to scan skill count", err)
		}
		results = append(results, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill counts", err)
	}
	return results, nil
}

func (r *postgresQueryRepo) SearchProfiles(ctx context.Context, q string) ([]*profile.Profile, error) {
	pattern := "%" + escapeLikePattern(q) + "%"

	builder := psqlQuery.Select(profileColumns).
		From("profiles").
		Where(sq.Or{
			sq.Expr(`name ILIKE ?`, pattern),
			sq.Expr(`email ILIKE ?`, pattern),
			sq.Expr(`EXISTS (SELECT 1 FROM jsonb_array_elements_text(skills) AS s(v) WHERE s.v ILIKE ?)`, pattern),
			sq.Expr(`EXISTS (SELECT 1 FROM jsonb_array_elements(projects) AS p(doc)
				WHERE p.doc->>'title' ILIKE ? OR p.doc->>'description' ILIKE ?)`, pattern, pattern),
		}).
		OrderBy("created_at", "id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build search query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.logger.Error("profile search query failed", err)
		return nil, apperror.NewInternal("failed to execute profile search", err)
	}
	return scanProfiles(rows)
}

// escapeLikePattern neutralizes LIKE metacharacters so user input always
// matches as literal text.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
