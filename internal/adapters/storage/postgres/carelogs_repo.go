package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"reptile-husbandry/internal/domain/carelogs"
)

type CareLogsRepo struct {
	db *sql.DB
}

func NewCareLogsRepo(db *sql.DB) *CareLogsRepo {
	return &CareLogsRepo{db: db}
}

var _ carelogs.Repository = (*CareLogsRepo)(nil)

const careLogColumns = `
	id, animal_id, user_id,
	log_type, log_date, parent_log_id,
	details, images, notes,
	created_at, updated_at
`

func (r *CareLogsRepo) Create(ctx context.Context, c carelogs.CareLog) error {
	images, err := json.Marshal(c.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO care_logs (
			id, animal_id, user_id,
			log_type, log_date, parent_log_id,
			details, images, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		c.ID,
		c.AnimalID,
		c.UserID,
		string(c.LogType),
		c.LogDate,
		nullIfEmpty(c.ParentLogID),
		[]byte(c.Details),
		images,
		c.Notes,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *CareLogsRepo) GetByID(ctx context.Context, id string) (carelogs.CareLog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return carelogs.CareLog{}, carelogs.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+careLogColumns+`
		FROM care_logs
		WHERE id = $1
	`, id)

	c, err := scanCareLog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return carelogs.CareLog{}, carelogs.ErrNotFound
		}
		return carelogs.CareLog{}, err
	}
	return c, nil
}

func (r *CareLogsRepo) List(
	ctx context.Context,
	f carelogs.ListFilter,
	p carelogs.PageRequest,
) ([]carelogs.CareLog, int, error) {
	where, args := buildWhere(f)

	// Total sin paginar; la ventana se aplica solo al SELECT de filas.
	var total int
	countQuery := "SELECT COUNT(*) FROM care_logs" + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sb := strings.Builder{}
	sb.WriteString("SELECT " + careLogColumns + " FROM care_logs")
	sb.WriteString(where)
	sb.WriteString(" ORDER BY " + orderClause(f.Sort, f.Order))

	argN := len(args) + 1
	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argN, argN+1))
	args = append(args, p.Limit, p.Offset)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]carelogs.CareLog, 0)
	for rows.Next() {
		c, err := scanCareLog(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *CareLogsRepo) Update(ctx context.Context, c carelogs.CareLog) error {
	images, err := json.Marshal(c.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE care_logs SET
			log_type = $2,
			log_date = $3,
			details = $4,
			images = $5,
			notes = $6,
			updated_at = $7
		WHERE id = $1
	`,
		c.ID,
		string(c.LogType),
		c.LogDate,
		[]byte(c.Details),
		images,
		c.Notes,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return carelogs.ErrNotFound
	}
	return nil
}

func (r *CareLogsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM care_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return carelogs.ErrNotFound
	}
	return nil
}

func (r *CareLogsRepo) HasChildren(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM care_logs WHERE parent_log_id = $1)
	`, id).Scan(&exists)
	return exists, err
}

func buildWhere(f carelogs.ListFilter) (string, []any) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 4)
	argN := 1

	if f.AnimalID != "" {
		conds = append(conds, fmt.Sprintf("animal_id = $%d", argN))
		args = append(args, f.AnimalID)
		argN++
	}
	if f.UserID != "" {
		conds = append(conds, fmt.Sprintf("user_id = $%d", argN))
		args = append(args, f.UserID)
		argN++
	}
	if len(f.Types) > 0 {
		placeholders := make([]string, 0, len(f.Types))
		for _, t := range f.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		conds = append(conds, "log_type IN ("+strings.Join(placeholders, ",")+")")
	}
	if f.From != nil {
		conds = append(conds, fmt.Sprintf("log_date >= $%d", argN))
		args = append(args, *f.From)
		argN++
	}
	if f.To != nil {
		conds = append(conds, fmt.Sprintf("log_date <= $%d", argN))
		args = append(args, *f.To)
		argN++
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause traduce el sort ya normalizado por el service; nunca
// interpola input del usuario directamente.
func orderClause(field carelogs.SortField, order carelogs.SortOrder) string {
	col := "log_date"
	if field == carelogs.SortCreatedAt {
		col = "created_at"
	}
	dir := "DESC"
	if order == carelogs.OrderAsc {
		dir = "ASC"
	}
	return col + " " + dir
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func scanCareLog(row interface{ Scan(dest ...any) error }) (carelogs.CareLog, error) {
	var c carelogs.CareLog
	var logType string
	var parent sql.NullString
	var details, images []byte

	if err := row.Scan(
		&c.ID,
		&c.AnimalID,
		&c.UserID,
		&logType,
		&c.LogDate,
		&parent,
		&details,
		&images,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return carelogs.CareLog{}, err
	}

	c.LogType = carelogs.LogType(logType)
	if parent.Valid {
		c.ParentLogID = parent.String
	}
	c.Details = json.RawMessage(details)
	if len(images) > 0 {
		if err := json.Unmarshal(images, &c.Images); err != nil {
			return carelogs.CareLog{}, fmt.Errorf("unmarshal images: %w", err)
		}
	}
	return c, nil
}
