package userRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			name,
			email,
			password
		) VALUES (
			:name,
			:email,
			:password
		)
		RETURNING id
	`

	queryGetUserByID = `
		SELECT
			id,
			name,
			email,
			password
		FROM users
		WHERE id = :id
	`
)
