package data

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jobtrackr/jobtrackr-api/internal/data/pgxutil"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

// relationSet selects which relations a read operation eager-loads. Explicit
// per-operation sets replace the generic include bag of ORM-style loading.
type relationSet struct {
	tags      bool
	skills    bool
	reminders bool
	history   bool
}

var (
	relationTagsSkills = relationSet{tags: true, skills: true}
	relationAll        = relationSet{tags: true, skills: true, reminders: true, history: true}
)

// loadRelations populates the selected relations for the given applications
// with one query per relation.
func (r *JobApplicationRepo) loadRelations(
	ctx context.Context,
	apps []*model.JobApplication,
	set relationSet,
) error {
	if len(apps) == 0 {
		return nil
	}

	ids := make([]string, len(apps))
	byID := make(map[string]*model.JobApplication, len(apps))
	for i, app := range apps {
		ids[i] = app.ID
		byID[app.ID] = app
	}

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if set.tags {
			if err := loadTags(ctx, conn, ids, byID); err != nil {
				return err
			}
		}
		if set.skills {
			if err := loadSkills(ctx, conn, ids, byID); err != nil {
				return err
			}
		}
		if set.reminders {
			if err := loadReminders(ctx, conn, ids, byID); err != nil {
				return err
			}
		}
		if set.history {
			if err := loadHistory(ctx, conn, ids, byID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

func loadTags(ctx context.Context, conn *pgx.Conn, ids []string, byID map[string]*model.JobApplication) error {
	rows, err := conn.Query(ctx, `
		SELECT jat.job_application_id, t.id, t.user_id, t.name, t.color, t.created_at, t.updated_at
		FROM job_application_tags jat
		JOIN tags t ON t.id = jat.tag_id
		WHERE jat.job_application_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var appID string
		var tag model.Tag
		if err := rows.Scan(&appID, &tag.ID, &tag.UserID, &tag.Name, &tag.Color, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return err
		}
		if app, ok := byID[appID]; ok {
			app.Tags = append(app.Tags, tag)
		}
	}
	return rows.Err()
}

func loadSkills(ctx context.Context, conn *pgx.Conn, ids []string, byID map[string]*model.JobApplication) error {
	rows, err := conn.Query(ctx, `
		SELECT id, job_application_id, name, description, years_of_experience_needed,
		       years_of_experience_have, is_optional, is_requirement_met
		FROM required_skills
		WHERE job_application_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	skills, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RequiredSkill])
	if err != nil {
		return err
	}
	for _, skill := range skills {
		if app, ok := byID[skill.JobApplicationID]; ok {
			app.RequiredSkills = append(app.RequiredSkills, skill)
		}
	}
	return nil
}

func loadReminders(ctx context.Context, conn *pgx.Conn, ids []string, byID map[string]*model.JobApplication) error {
	rows, err := conn.Query(ctx, `
		SELECT id, job_application_id, name, reminder_date, remind_at, created_at, updated_at
		FROM reminders
		WHERE job_application_id = ANY($1)
		ORDER BY remind_at ASC`, ids)
	if err != nil {
		return err
	}
	reminders, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Reminder])
	if err != nil {
		return err
	}
	for _, reminder := range reminders {
		if app, ok := byID[reminder.JobApplicationID]; ok {
			app.Reminders = append(app.Reminders, reminder)
		}
	}
	return nil
}

func loadHistory(ctx context.Context, conn *pgx.Conn, ids []string, byID map[string]*model.JobApplication) error {
	rows, err := conn.Query(ctx, `
		SELECT id, job_application_id, old_status, new_status, changed_at
		FROM job_application_status_history
		WHERE job_application_id = ANY($1)
		ORDER BY changed_at ASC`, ids)
	if err != nil {
		return err
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.StatusHistoryEntry])
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if app, ok := byID[entry.JobApplicationID]; ok {
			app.StatusHistory = append(app.StatusHistory, entry)
		}
	}
	return nil
}
