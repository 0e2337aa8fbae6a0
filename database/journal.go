package database

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"alpha-terminal/models"
)

// Journal mirrors session state into the database for aggregate queries.
// The in-memory stores stay the source of truth for ordering.
type Journal struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func (j *Journal) RecordSignal(ctx context.Context, sig models.TradeSignal) error {
	return j.DB.WithContext(ctx).Save(&sig).Error
}

// RecordItem upserts the item, so an analyzed update replaces the provisional row.
func (j *Journal) RecordItem(ctx context.Context, item models.IntelItem) error {
	return j.DB.WithContext(ctx).Save(&item).Error
}

// Run drains the store subscriptions until ctx is done or both channels close.
func (j *Journal) Run(ctx context.Context, signals <-chan models.TradeSignal, items <-chan models.IntelItem) {
	for signals != nil || items != nil {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-signals:
			if !ok {
				signals = nil
				continue
			}
			if err := j.RecordSignal(ctx, sig); err != nil {
				j.logger().Warn("journal signal failed", zap.String("signal_id", sig.ID), zap.Error(err))
			}
		case item, ok := <-items:
			if !ok {
				items = nil
				continue
			}
			if err := j.RecordItem(ctx, item); err != nil {
				j.logger().Warn("journal intel item failed", zap.String("item_id", item.ID), zap.Error(err))
			}
		}
	}
}

func (j *Journal) Ping(ctx context.Context) error {
	sqlDB, err := j.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (j *Journal) logger() *zap.Logger {
	if j.Logger == nil {
		return zap.NewNop()
	}
	return j.Logger
}
