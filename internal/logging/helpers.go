package logging

import "context"

func update(ctx context.Context, fn func(c *logCtx)) context.Context {
	c, _ := ctx.Value(key).(logCtx)
	fn(&c)
	return context.WithValue(ctx, key, c)
}

// WithLogRunID добавляет идентификатор запуска в контекст.
func WithLogRunID(ctx context.Context, runID string) context.Context {
	return update(ctx, func(c *logCtx) { c.RunID = runID })
}

// WithLogRunMode добавляет режимы запуска (dry-run, исключение групп) в контекст.
func WithLogRunMode(ctx context.Context, dryRun, groups bool) context.Context {
	return update(ctx, func(c *logCtx) {
		c.DryRun = dryRun
		c.Groups = groups
	})
}

// WithLogParticipantCount добавляет количество участников в контекст.
func WithLogParticipantCount(ctx context.Context, cnt int) context.Context {
	return update(ctx, func(c *logCtx) { c.ParticipantCount = cnt })
}

// WithLogParticipant добавляет ID и адрес участника в контекст.
func WithLogParticipant(ctx context.Context, id, email string) context.Context {
	return update(ctx, func(c *logCtx) {
		c.ParticipantID = id
		c.ParticipantEmail = email
	})
}

// WithLogAttempts добавляет число попыток жеребьёвки в контекст.
func WithLogAttempts(ctx context.Context, attempts int) context.Context {
	return update(ctx, func(c *logCtx) { c.Attempts = attempts })
}

// WithLogDeliveryStatus добавляет статус доставки в контекст.
func WithLogDeliveryStatus(ctx context.Context, status string) context.Context {
	return update(ctx, func(c *logCtx) { c.DeliveryStatus = status })
}
