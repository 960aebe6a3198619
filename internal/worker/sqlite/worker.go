package sqlite

import (
	"context"
	"errors"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
	workerDatamodel "github.com/frahmantamala/manager-dashboard/internal/core/datamodel/worker"
	"github.com/frahmantamala/manager-dashboard/internal/worker"
	"gorm.io/gorm"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) worker.Repository {
	return &WorkerRepository{db: db}
}

func preloadEvents(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}

func (r *WorkerRepository) All(ctx context.Context) ([]*worker.Worker, error) {
	var rows []*workerDatamodel.Worker
	err := r.db.WithContext(ctx).
		Preload("Events", preloadEvents).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return worker.FromDataModelSlice(rows), nil
}

func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*worker.Worker, error) {
	var row workerDatamodel.Worker
	err := r.db.WithContext(ctx).
		Preload("Events", preloadEvents).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, err
	}
	return worker.FromDataModel(&row), nil
}

func (r *WorkerRepository) MaxID(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).
		Model(&workerDatamodel.Worker{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&max).Error
	return max, err
}

// Prepend stores w one position ahead of the current front.
func (r *WorkerRepository) Prepend(ctx context.Context, w *worker.Worker) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var front int64
		err := tx.Model(&workerDatamodel.Worker{}).
			Select("COALESCE(MIN(position), 0)").
			Scan(&front).Error
		if err != nil {
			return err
		}
		return tx.Create(worker.ToDataModel(w, front-1)).Error
	})
}

func (r *WorkerRepository) UpdateStatus(ctx context.Context, id int64, status worker.Status) error {
	result := r.db.WithContext(ctx).
		Model(&workerDatamodel.Worker{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrWorkerNotFound
	}
	return nil
}

func (r *WorkerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", id).Delete(&workerDatamodel.WorkerEvent{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&workerDatamodel.Worker{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrWorkerNotFound
		}
		return nil
	})
}

// Reset replaces every row. The first worker gets position 0.
func (r *WorkerRepository) Reset(ctx context.Context, workers []*worker.Worker) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&workerDatamodel.WorkerEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&workerDatamodel.Worker{}).Error; err != nil {
			return err
		}
		for i, w := range workers {
			if err := tx.Create(worker.ToDataModel(w, int64(i))).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
