package dllist

//go:generate mockgen -destination=internal/mocks/logger.go -package=mocks github.com/sirkon/dllist Logger
