package dbmetrics

import "context"

type executorCtxKey struct{}

// WithExecutor кладет транзакционный executor в context
// Используется transaction manager-ами, чтобы репозитории выполняли
// запросы внутри открытой транзакции без изменения сигнатур
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, executor)
}

// GetExecutor возвращает executor из context, если там есть активная
// транзакция, иначе fallback (обычно *sql.DB или *dbmetrics.DB репозитория)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorCtxKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction возвращает true, если в context есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorCtxKey{}).(DBExecutor)
	return ok
}
