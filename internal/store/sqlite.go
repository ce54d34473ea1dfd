package store

import (
	"context"
	"database/sql"
	_ "embed"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

//go:embed schema.sql
var schemaSQL string

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path.
// ":memory:" gives a private in-process database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// one connection keeps ":memory:" databases shared and serialises writers
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "init schema")
	}
	return s, nil
}

// fixed width so timestamps sort lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	return t, errors.Wrapf(err, "parse timestamp %q", s)
}

func (s *SQLiteStore) CreateConversation(ctx context.Context, conv *Conversation) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO conversations(id, user_id, created_at) VALUES(?,?,?)",
		conv.ID, conv.UserID, formatTime(conv.CreatedAt))
	return errors.Wrap(err, "insert conversation")
}

func (s *SQLiteStore) ListConversations(ctx context.Context, userID string) ([]Conversation, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, created_at FROM conversations WHERE user_id=? ORDER BY rowid", userID)
	if err != nil {
		return nil, errors.Wrap(err, "query conversations")
	}
	defer rows.Close()

	convs := make([]Conversation, 0)
	for rows.Next() {
		var c Conversation
		var created string
		if err := rows.Scan(&c.ID, &c.UserID, &created); err != nil {
			return nil, errors.Wrap(err, "scan conversation")
		}
		if c.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, errors.Wrap(rows.Err(), "iterate conversations")
}

func (s *SQLiteStore) AppendMessage(ctx context.Context, msg *Message) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO messages(id, conversation_id, sender, text, timestamp) VALUES(?,?,?,?,?)",
		msg.ID, msg.ConversationID, msg.Sender, msg.Text, formatTime(msg.Timestamp))
	return errors.Wrap(err, "insert message")
}

func (s *SQLiteStore) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, conversation_id, sender, text, timestamp FROM messages WHERE conversation_id=? ORDER BY seq",
		conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "query messages")
	}
	defer rows.Close()

	msgs := make([]Message, 0)
	for rows.Next() {
		var m Message
		var ts string
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Sender, &m.Text, &ts); err != nil {
			return nil, errors.Wrap(err, "scan message")
		}
		if m.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, errors.Wrap(rows.Err(), "iterate messages")
}

func (s *SQLiteStore) SaveMood(ctx context.Context, mood *Mood) error {
	var note sql.NullString
	if mood.Note != nil {
		note = sql.NullString{String: *mood.Note, Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO moods(id, user_id, mood, note, timestamp) VALUES(?,?,?,?,?)",
		mood.ID, mood.UserID, mood.Mood, note, formatTime(mood.Timestamp))
	return errors.Wrap(err, "insert mood")
}

func (s *SQLiteStore) ListMoods(ctx context.Context, userID string) ([]Mood, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, mood, note, timestamp FROM moods WHERE user_id=? ORDER BY timestamp DESC, seq DESC",
		userID)
	if err != nil {
		return nil, errors.Wrap(err, "query moods")
	}
	defer rows.Close()

	moods := make([]Mood, 0)
	for rows.Next() {
		var m Mood
		var note sql.NullString
		var ts string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Mood, &note, &ts); err != nil {
			return nil, errors.Wrap(err, "scan mood")
		}
		if note.Valid {
			n := note.String
			m.Note = &n
		}
		if m.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		moods = append(moods, m)
	}
	return moods, errors.Wrap(rows.Err(), "iterate moods")
}

func (s *SQLiteStore) CreateJournal(ctx context.Context, journal *Journal) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO journals(id, user_id, title, content, created_at) VALUES(?,?,?,?,?)",
		journal.ID, journal.UserID, journal.Title, journal.Content, formatTime(journal.CreatedAt))
	return errors.Wrap(err, "insert journal")
}

func (s *SQLiteStore) ListJournals(ctx context.Context, userID string) ([]Journal, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, title, content, created_at FROM journals WHERE user_id=? ORDER BY seq", userID)
	if err != nil {
		return nil, errors.Wrap(err, "query journals")
	}
	defer rows.Close()

	journals := make([]Journal, 0)
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		journals = append(journals, *j)
	}
	return journals, errors.Wrap(rows.Err(), "iterate journals")
}

func (s *SQLiteStore) GetJournal(ctx context.Context, id string) (*Journal, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, title, content, created_at FROM journals WHERE id=?", id)
	j, err := scanJournal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return j, err
}

func (s *SQLiteStore) UpdateJournal(ctx context.Context, id, title, content string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE journals SET title=?, content=? WHERE id=?", title, content, id)
	if err != nil {
		return errors.Wrap(err, "update journal")
	}
	return requireAffected(res)
}

func (s *SQLiteStore) DeleteJournal(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM journals WHERE id=?", id)
	if err != nil {
		return errors.Wrap(err, "delete journal")
	}
	return requireAffected(res)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJournal(row scanner) (*Journal, error) {
	var j Journal
	var created string
	if err := row.Scan(&j.ID, &j.UserID, &j.Title, &j.Content, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "scan journal")
	}
	var err error
	if j.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &j, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
