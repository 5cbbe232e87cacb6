package chatRepository

const (
	queryCreateChatMessage = `
	INSERT INTO chat_messages (
		id,
		user_id,
		message,
		response,
		intents,
		created_at
	) VALUES (
		:id,
		:user_id,
		:message,
		:response,
		:intents,
		NOW()
	)
	`

	queryGetChatMessagesByUserID = `
	SELECT
		id,
		user_id,
		message,
		response,
		intents,
		created_at
	FROM chat_messages
	WHERE user_id = :user_id
	ORDER BY created_at DESC
	LIMIT :limit
	`

	queryDeleteChatMessagesByUserID = `
	DELETE FROM chat_messages
	WHERE user_id = :user_id
	`
)
