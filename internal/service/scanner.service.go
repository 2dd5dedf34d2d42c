package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/domain"
	"harvestladder/internal/logger"
	"harvestladder/internal/repository"
)

// ScannerService finds active alerts whose threshold the market has
// crossed. Scan itself never mutates anything; ScanAndNotify fires the
// matched alerts and pushes notifications.
type ScannerService interface {
	Scan(ctx context.Context, prices map[string]float64) ([]domain.HarvestHit, error)
	ScanAndNotify(ctx context.Context) ([]domain.HarvestHit, error)
}

type scannerServiceHandler struct {
	Db                  *sql.DB
	RungAlertRepository repository.RungAlertRepository
	PlanRungRepository  repository.PlanRungRepository
	AlpacaRepository    repository.AlpacaRepository
	NotificationService NotificationService
}

func NewScannerService(
	db *sql.DB,
	rungAlertRepository repository.RungAlertRepository,
	planRungRepository repository.PlanRungRepository,
	alpacaRepository repository.AlpacaRepository,
	notificationService NotificationService,
) ScannerService {
	return &scannerServiceHandler{
		Db:                  db,
		RungAlertRepository: rungAlertRepository,
		PlanRungRepository:  planRungRepository,
		AlpacaRepository:    alpacaRepository,
		NotificationService: notificationService,
	}
}

func (h *scannerServiceHandler) Scan(ctx context.Context, prices map[string]float64) ([]domain.HarvestHit, error) {
	log := logger.FromContext(ctx)

	alerts, err := h.RungAlertRepository.ListActive()
	if err != nil {
		return nil, err
	}

	hits := []domain.HarvestHit{}
	for _, alert := range alerts {
		price, ok := prices[alert.Symbol]
		if !ok {
			log.Warnf("no price for %s, skipping alert", alert.Symbol)
			continue
		}
		// >= so a touch of the target counts
		if price < alert.ThresholdPrice {
			continue
		}

		rung, err := h.PlanRungRepository.Get(alert.RungID)
		if err != nil {
			return nil, err
		}
		if rung.Status != model.RungStatus_Pending {
			continue
		}

		hits = append(hits, domain.HarvestHit{
			Symbol:         alert.Symbol,
			PlanInstanceID: alert.PlanInstanceID,
			RungID:         alert.RungID,
			RungIndex:      int(rung.RungIndex),
			TargetPrice:    rung.TargetPrice,
			CurrentPrice:   price,
			SharesToSell:   int(rung.SharesSoldPlanned),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Symbol < hits[j].Symbol
	})

	return hits, nil
}

func (h *scannerServiceHandler) ScanAndNotify(ctx context.Context) ([]domain.HarvestHit, error) {
	log := logger.FromContext(ctx)

	open, err := h.AlpacaRepository.IsMarketOpen()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDataUnavailable, err.Error())
	}
	if !open {
		// after-hours quotes are stale; don't fire alerts off them
		log.Info("market is closed, skipping scan")
		return []domain.HarvestHit{}, nil
	}

	alerts, err := h.RungAlertRepository.ListActive()
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		log.Info("no active alerts to scan")
		return []domain.HarvestHit{}, nil
	}

	symbolSet := map[string]bool{}
	symbols := []string{}
	for _, a := range alerts {
		if !symbolSet[a.Symbol] {
			symbolSet[a.Symbol] = true
			symbols = append(symbols, a.Symbol)
		}
	}

	quotes, err := h.AlpacaRepository.GetLatestPrices(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDataUnavailable, err.Error())
	}
	prices := map[string]float64{}
	for symbol, quote := range quotes {
		prices[symbol] = quote.InexactFloat64()
	}

	hits, err := h.Scan(ctx, prices)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return hits, nil
	}

	now := time.Now().UTC()
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, hit := range hits {
		alert, err := h.RungAlertRepository.GetActiveForRung(tx, hit.RungID)
		if err != nil {
			return nil, err
		}
		if alert == nil {
			continue
		}
		_, err = h.RungAlertRepository.MarkFired(tx, alert.RungAlertID, hit.CurrentPrice, now)
		if err != nil {
			return nil, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit fired alerts: %w", err)
	}

	err = h.NotificationService.NotifyHits(ctx, hits)
	if err != nil {
		// alerts are already fired; a lost notification shouldn't fail the scan
		log.Errorf("failed to notify hits: %v", err)
	}

	return hits, nil
}
