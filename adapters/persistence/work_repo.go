package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saikrishna-79/portfolio-pro/internal/domain/work"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type postgresWorkRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresWorkRepo(db *pgxpool.Pool, logger logger.Logger) work.Repository {
	return &postgresWorkRepo{db: db, logger: logger}
}

var psqlWork = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const workColumns = "id, owner_id, company, position, location, start_date, end_date, current, description, responsibilities, achievements, skills, employment_type, created_at, updated_at"

func scanWork(row pgx.Row) (*work.Work, error) {
	w := &work.Work{}
	err := row.Scan(
		&w.ID, &w.OwnerID, &w.Company, &w.Position, &w.Location,
		&w.StartDate, &w.EndDate, &w.Current, &w.Description,
		&w.Responsibilities, &w.Achievements, &w.Skills,
		&w.EmploymentType, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("work experience", "")
		}
		return nil, apperror.NewInternal("failed to scan work row", err)
	}
	return w, nil
}

func scanWorkRows(rows pgx.Rows) ([]*work.Work, error) {
	defer rows.Close()
	items := make([]*work.Work, 0)
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work rows", err)
	}
	return items, nil
}

func (r *postgresWorkRepo) Save(ctx context.Context, w *work.Work) error {
	query := `
		INSERT INTO work_experiences (id, owner_id, company, position, location, start_date, end_date, current, description, responsibilities, achievements, skills, employment_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(ctx, query,
		w.ID, w.OwnerID, w.Company, w.Position, w.Location,
		w.StartDate, w.EndDate, w.Current, w.Description,
		w.Responsibilities, w.Achievements, w.Skills,
		w.EmploymentType, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save work experience", err)
	}
	return nil
}

func (r *postgresWorkRepo) Update(ctx context.Context, w *work.Work) error {
	query := `
		UPDATE work_experiences SET
			company = $2, position = $3, location = $4, start_date = $5, end_date = $6,
			current = $7, description = $8, responsibilities = $9, achievements = $10,
			skills = $11, employment_type = $12, updated_at = $13
		WHERE id = $1 AND owner_id = $14
	`
	cmdTag, err := r.db.Exec(ctx, query,
		w.ID, w.Company, w.Position, w.Location, w.StartDate, w.EndDate,
		w.Current, w.Description, w.Responsibilities, w.Achievements,
		w.Skills, w.EmploymentType, w.UpdatedAt, w.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", w.ID.String())
	}
	return nil
}

func (r *postgresWorkRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM work_experiences WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", id.String())
	}
	return nil
}

func (r *postgresWorkRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*work.Work, error) {
	query := `SELECT ` + workColumns + ` FROM work_experiences WHERE id = $1 AND owner_id = $2`
	row := r.db.QueryRow(ctx, query, id, ownerID)
	return scanWork(row)
}

func (r *postgresWorkRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, sort string) ([]*work.Work, error) {
	builder := psqlWork.Select(workColumns).
		From("work_experiences").
		Where(sq.Eq{"owner_id": ownerID})

	switch sort {
	case work.SortByCompany:
		builder = builder.OrderBy("company ASC")
	default:
		builder = builder.OrderBy("start_date DESC")
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list work query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work by owner", err)
	}
	return scanWorkRows(rows)
}

func (r *postgresWorkRepo) SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*work.Work, error) {
	pattern := likePattern(keyword)
	builder := psqlWork.Select(workColumns).
		From("work_experiences").
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Or{
			sq.ILike{"company": pattern},
			sq.ILike{"position": pattern},
			sq.ILike{"description": pattern},
			sq.Expr("array_to_string(responsibilities, ' ') ILIKE ?", pattern),
			sq.Expr("array_to_string(achievements, ' ') ILIKE ?", pattern),
			sq.Expr("array_to_string(skills, ' ') ILIKE ?", pattern),
		}).
		OrderBy("start_date DESC").
		Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build work search query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search work experiences", err)
	}
	return scanWorkRows(rows)
}
