package store

// Query text shared by both backends: mattn/go-sqlite3 binds $N placeholders
// positionally just like pgx, so a single set of constants serves SQLite and
// PostgreSQL alike.
const (
	createUser = `INSERT INTO users (username, password_hash, created_at)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	createConversation = `INSERT INTO conversations (user_id, title, created_at)
    VALUES ($1, $2, $3)
    RETURNING conversation_id, user_id, title, created_at;`

	// conversation_id breaks creation-time ties so the newest-first order is
	// stable even when rows share a timestamp.
	listConversations = `SELECT conversation_id, user_id, title, created_at
    FROM conversations
    WHERE user_id = $1
    ORDER BY created_at DESC, conversation_id DESC;`

	updateConversationTitle = `UPDATE conversations
    SET title = $2
    WHERE conversation_id = $1;`

	deleteConversationMessages = `DELETE FROM messages
    WHERE conversation_id = $1;`

	deleteConversation = `DELETE FROM conversations
    WHERE conversation_id = $1;`

	appendMessage = `INSERT INTO messages (conversation_id, role, content, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING message_id, conversation_id, role, content, created_at;`

	// message_id breaks creation-time ties so a transcript always reads in
	// exact submission order.
	listMessages = `SELECT message_id, conversation_id, role, content, created_at
    FROM messages
    WHERE conversation_id = $1
    ORDER BY created_at ASC, message_id ASC;`

	getUserSettings = `SELECT user_id, api_key, updated_at
    FROM user_settings
    WHERE user_id = $1;`

	upsertUserSettings = `INSERT INTO user_settings (user_id, api_key, updated_at)
    VALUES ($1, $2, $3)
    ON CONFLICT (user_id) DO UPDATE SET api_key = excluded.api_key, updated_at = excluded.updated_at
    RETURNING user_id, api_key, updated_at;`
)
