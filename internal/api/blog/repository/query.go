package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			title,
			body
		) VALUES (
			:title,
			:body
		)
		RETURNING id
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			body
		FROM blogs
		WHERE id = :id
	`

	queryGetAllBlogs = `
		SELECT
			id,
			title,
			body
		FROM blogs
		ORDER BY id ASC
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			body = :body
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`
)
