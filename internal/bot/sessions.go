package bot

import (
	"posbot/internal/pos"

	"go.uber.org/zap"
)

// SessionRegistry keeps one checkout session per chat. It is not safe for
// concurrent use; the Bot serializes access.
type SessionRegistry struct {
	catalog  *pos.Catalog
	sessions map[int64]*pos.Session
	logger   *zap.Logger
}

func NewSessionRegistry(catalog *pos.Catalog, logger *zap.Logger) *SessionRegistry {
	return &SessionRegistry{
		catalog:  catalog,
		sessions: make(map[int64]*pos.Session),
		logger:   logger,
	}
}

// Get returns the chat's session, opening one on first use.
func (r *SessionRegistry) Get(chatID int64) *pos.Session {
	if s, ok := r.sessions[chatID]; ok {
		return s
	}
	return r.Open(chatID)
}

// Open replaces the chat's session with a fresh one over the current catalog.
func (r *SessionRegistry) Open(chatID int64) *pos.Session {
	s := pos.NewSession(r.catalog, r.logger.With(zap.Int64("chat_id", chatID)))
	r.sessions[chatID] = s

	r.logger.Info("Checkout session opened",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", s.ID))
	return s
}

// SetCatalog swaps the catalog used by sessions opened from now on. Running
// sessions keep the catalog they were opened with.
func (r *SessionRegistry) SetCatalog(catalog *pos.Catalog) {
	r.catalog = catalog
}

func (r *SessionRegistry) Catalog() *pos.Catalog {
	return r.catalog
}

func (r *SessionRegistry) Len() int {
	return len(r.sessions)
}
