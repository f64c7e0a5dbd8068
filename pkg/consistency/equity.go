// Package consistency runs the periodic equity-allocation scan. Projects
// may allocate more than 100% of equity across owner share and needs; that
// is a soft invariant surfaced to operators, never a write-time constraint.
package consistency

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"github.com/mosala-labs/mosala-backend/dao/model"
	"github.com/mosala-labs/mosala-backend/dao/query"
	"github.com/mosala-labs/mosala-backend/pkg/alert"
	"github.com/mosala-labs/mosala-backend/pkg/metrics"
	"github.com/mosala-labs/mosala-backend/pkg/review"
)

type Scanner struct {
	cron *cron.Cron
}

func NewScanner() *Scanner {
	return &Scanner{cron: cron.New()}
}

// Start schedules the scan with the given cron spec and runs one scan
// immediately so a fresh deployment reports anomalies without waiting for
// the first tick.
func (s *Scanner) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() {
		if err := s.ScanOnce(context.Background()); err != nil {
			klog.Errorf("equity scan failed: %v", err)
		}
	}); err != nil {
		return err
	}
	s.cron.Start()

	go func() {
		if err := s.ScanOnce(context.Background()); err != nil {
			klog.Errorf("initial equity scan failed: %v", err)
		}
	}()
	return nil
}

func (s *Scanner) Stop() {
	s.cron.Stop()
}

// ScanOnce walks every unarchived project, recomputes its allocation and
// reports the ones above 100%.
func (s *Scanner) ScanOnce(ctx context.Context) error {
	db := query.GetDB().WithContext(ctx)

	var projects []model.Project
	err := db.Preload("Needs").
		Where("status <> ?", model.ProjectArchived).
		Find(&projects).Error
	if err != nil {
		return err
	}

	anomalous := lo.Filter(projects, func(p model.Project, _ int) bool {
		return review.Summarize(p.OwnerEquityPercent, p.Needs).Anomalous()
	})
	metrics.EquityAnomalies.Set(float64(len(anomalous)))

	for i := range anomalous {
		p := anomalous[i]
		total := review.Summarize(p.OwnerEquityPercent, p.Needs).TotalAllocated
		klog.Warningf("project %d (%s) allocates %d%% equity", p.ID, p.Title, total)
		alert.FireAndForget("equity-anomaly", func(ctx context.Context) error {
			return alert.GetAlertMgr().EquityAnomaly(ctx, p.ID, total)
		})
	}

	klog.Infof("equity scan done: %d projects checked, %d anomalous", len(projects), len(anomalous))
	return nil
}
