package sqlscript

import (
	"fmt"
	"strings"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

// Header lines written at the top of every script.
const (
	headerTitle     = "-- OmniMedia full demo bootstrap SQL"
	headerGenerator = "-- Generated by seedgen"
)

// Renderer renders seed scripts for PostgreSQL. It implements ports.ScriptRenderer.
type Renderer struct{}

// NewRenderer creates a new renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the full bootstrap script wrapped in one transaction.
func (r *Renderer) Render(script entities.SeedScript) ([]byte, error) {
	w := &scriptWriter{}

	w.line(headerTitle)
	w.line(headerGenerator)
	w.blank()
	w.line("BEGIN;")
	w.blank()

	w.lines(extensionStatements...)
	w.blank()
	w.lines(schemaStatements...)
	w.blank()
	for _, block := range tableBlocks {
		w.lines(block...)
		w.blank()
	}

	if err := r.renderUsers(w, script); err != nil {
		return nil, err
	}
	if err := r.renderMedia(w, script.Media); err != nil {
		return nil, err
	}
	r.renderLists(w, script.Lists)

	w.line("-- Seed interaction.user_media from list items")
	w.line(seedUserMediaStatement)
	w.blank()

	w.line("COMMIT;")

	return []byte(w.String()), nil
}

func (r *Renderer) renderUsers(w *scriptWriter, script entities.SeedScript) error {
	w.line("-- Users")
	for _, user := range script.Users {
		settings, err := JSONB(user.Settings)
		if err != nil {
			return fmt.Errorf("rendering settings for %s: %w", user.Email, err)
		}
		w.line(UserUpsert(user.Email, script.PasswordHash, settings))
	}
	w.blank()
	return nil
}

func (r *Renderer) renderMedia(w *scriptWriter, media []entities.Media) error {
	w.line("-- Media catalog")
	for i := range media {
		stmt, err := MediaInsert(&media[i])
		if err != nil {
			return err
		}
		w.line(stmt)
	}
	w.blank()
	return nil
}

func (r *Renderer) renderLists(w *scriptWriter, lists []entities.DemoList) {
	w.line(fmt.Sprintf("-- Base category lists (%d items/category/user)", entities.DemoListSize))
	for i := range lists {
		w.line(ListInsert(&lists[i]))
		w.line(ListItemsInsert(&lists[i]))
	}
	w.blank()
}

// UserUpsert inserts a seed user, overwriting hash and settings on conflict.
func UserUpsert(email, passwordHash, settingsJSONB string) string {
	return "INSERT INTO users.users (email, password_hash, settings) " +
		fmt.Sprintf("VALUES (%s, %s, %s) ", Quote(email), Quote(passwordHash), settingsJSONB) +
		"ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, settings = EXCLUDED.settings;"
}

// MediaInsert inserts a media row and leaves an existing external_id untouched.
func MediaInsert(m *entities.Media) (string, error) {
	attributes, err := JSONB(m.Attributes)
	if err != nil {
		return "", fmt.Errorf("rendering attributes for %s: %w", m.ExternalID, err)
	}

	var description *string
	if m.Description != nil {
		d := Truncate(*m.Description, MaxDescriptionLength)
		description = &d
	}

	return "INSERT INTO media.media (external_id, media_type, media_class, title, release_date, country_of_origin, creators, cover_url, description, attributes) " +
		fmt.Sprintf("VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s) ",
			Quote(m.ExternalID),
			Quote(string(m.MediaType)),
			Quote(m.MediaClass),
			Quote(m.Title),
			QuoteNullable(m.ReleaseDate),
			QuoteNullable(m.CountryOfOrigin),
			VarcharArray(m.Creators),
			QuoteNullable(m.CoverURL),
			QuoteNullable(description),
			attributes,
		) +
		"ON CONFLICT (external_id) DO NOTHING;", nil
}

// ListInsert creates a demo list keyed by (user, name).
func ListInsert(l *entities.DemoList) string {
	return "INSERT INTO interaction.user_lists (user_id, name, description, is_public, list_type, filter_definition) " +
		"SELECT u.id, " +
		fmt.Sprintf("%s, %s, FALSE, 'static', NULL ", Quote(l.Name), Quote(l.Description)) +
		"FROM users.users u " +
		fmt.Sprintf("WHERE u.email = %s ", Quote(l.UserEmail)) +
		"ON CONFLICT (user_id, name) DO NOTHING;"
}

// ListItemsInsert fills a demo list from the title-ordered window of its media type.
func ListItemsInsert(l *entities.DemoList) string {
	return "INSERT INTO interaction.list_items (list_id, media_id, position, added_at) " +
		"SELECT l.id, m.id, m.position, NOW() " +
		"FROM interaction.user_lists l " +
		"JOIN users.users u ON u.id = l.user_id " +
		"JOIN LATERAL (" +
		"  SELECT id, ROW_NUMBER() OVER (ORDER BY title) AS position " +
		fmt.Sprintf("  FROM media.media WHERE media_type = %s ORDER BY title LIMIT %d OFFSET %d", Quote(string(l.MediaType)), l.Limit, l.Offset) +
		") m ON TRUE " +
		fmt.Sprintf("WHERE u.email = %s AND l.name = %s ", Quote(l.UserEmail), Quote(l.Name)) +
		"ON CONFLICT (list_id, media_id) DO NOTHING;"
}

// scriptWriter accumulates script lines.
type scriptWriter struct {
	b strings.Builder
}

func (w *scriptWriter) line(s string) {
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *scriptWriter) lines(ss ...string) {
	for _, s := range ss {
		w.line(s)
	}
}

func (w *scriptWriter) blank() {
	w.b.WriteByte('\n')
}

func (w *scriptWriter) String() string {
	return w.b.String()
}
