package types

const (
	NO_PAGINATION = 0

	DEFAULT_PAGE_SIZE = 20
)
