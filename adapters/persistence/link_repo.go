package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saikrishna-79/portfolio-pro/internal/domain/link"
	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
)

type postgresLinkRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresLinkRepo(db *pgxpool.Pool, logger logger.Logger) link.Repository {
	return &postgresLinkRepo{db: db, logger: logger}
}

var psqlLink = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const linkColumns = `id, owner_id, platform, url, label, description, is_public, "order", created_at, updated_at`

func scanLink(row pgx.Row) (*link.Link, error) {
	l := &link.Link{}
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Platform, &l.URL, &l.Label,
		&l.Description, &l.IsPublic, &l.Order,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("link", "")
		}
		return nil, apperror.NewInternal("failed to scan link row", err)
	}
	return l, nil
}

func scanLinks(rows pgx.Rows) ([]*link.Link, error) {
	defer rows.Close()
	links := make([]*link.Link, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating link rows", err)
	}
	return links, nil
}

func (r *postgresLinkRepo) Save(ctx context.Context, l *link.Link) error {
	query := `
		INSERT INTO links (id, owner_id, platform, url, label, description, is_public, "order", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		l.ID, l.OwnerID, l.Platform, l.URL, l.Label,
		l.Description, l.IsPublic, l.Order,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save link", err)
	}
	return nil
}

func (r *postgresLinkRepo) Update(ctx context.Context, l *link.Link) error {
	query := `
		UPDATE links SET
			platform = $2, url = $3, label = $4, description = $5,
			is_public = $6, "order" = $7, updated_at = $8
		WHERE id = $1 AND owner_id = $9
	`
	cmdTag, err := r.db.Exec(ctx, query,
		l.ID, l.Platform, l.URL, l.Label, l.Description,
		l.IsPublic, l.Order, l.UpdatedAt, l.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update link", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("link", l.ID.String())
	}
	return nil
}

func (r *postgresLinkRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM links WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete link", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("link", id.String())
	}
	return nil
}

func (r *postgresLinkRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*link.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE id = $1 AND owner_id = $2`
	row := r.db.QueryRow(ctx, query, id, ownerID)
	return scanLink(row)
}

func (r *postgresLinkRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter link.ListFilter) ([]*link.Link, error) {
	builder := psqlLink.Select(linkColumns).
		From("links").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy(`"order" ASC`, "created_at DESC")

	if filter.Platform != nil {
		builder = builder.Where(sq.Eq{"platform": *filter.Platform})
	}
	if filter.IsPublic != nil {
		builder = builder.Where(sq.Eq{"is_public": *filter.IsPublic})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list links query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query links by owner", err)
	}
	return scanLinks(rows)
}

func (r *postgresLinkRepo) SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*link.Link, error) {
	pattern := likePattern(keyword)
	builder := psqlLink.Select(linkColumns).
		From("links").
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Or{
			sq.ILike{"platform": pattern},
			sq.ILike{"label": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy(`"order" ASC`, "created_at DESC").
		Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build link search query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search links", err)
	}
	return scanLinks(rows)
}
