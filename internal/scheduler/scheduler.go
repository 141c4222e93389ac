package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"FiveLine/internal/collector"
	"FiveLine/internal/model"
	"FiveLine/internal/notifier"
	"FiveLine/internal/service"

	"github.com/robfig/cron/v3"
)

const historyLimit = 10

// Scheduler manages the cron report and chat commands.
type Scheduler struct {
	Cron     *cron.Cron
	Service  *service.Service
	Notifier notifier.Notifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *service.Service, n notifier.Notifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Service:  svc,
		Notifier: n,
		Ctx:      ctx,
	}
}

// RegisterAll registers the daily report task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow executes the daily task immediately (for RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily spectrum report")
	report, err := s.report(s.Ctx, "", model.TriggerDaily)
	if err != nil {
		log.Printf("[ERROR] daily report: %v", err)
		s.trySend(fmt.Sprintf("❌ 五線譜計算失敗: %v", err))
		return
	}
	s.trySend(report)
}

// report computes the spectrum for symbol (empty = configured) and renders it.
func (s *Scheduler) report(ctx context.Context, symbol string, trigger model.TriggerType) (string, error) {
	out, err := s.Service.Compute(ctx, collector.Request{Symbol: symbol}, trigger)
	if err != nil {
		return "", err
	}
	if out.Signal == nil {
		res := out.Result
		return fmt.Sprintf("⚠️ %s 僅有 %d 筆資料，不足 %d 日趨勢線",
			res.Series.Symbol, len(res.Series.Samples), res.Spectrum.Window), nil
	}
	return notifier.FormatSpectrumReport(out.Signal), nil
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return notifier.FormatHelp()
	}
	switch fields[0] {
	case "/spectrum", "五線譜":
		symbol := ""
		if len(fields) > 1 {
			symbol = fields[1]
		}
		report, err := s.report(ctx, symbol, model.TriggerManual)
		if err != nil {
			log.Printf("[ERROR] manual report: %v", err)
			if errors.Is(err, collector.ErrNoData) {
				return "找不到股價資料，請檢查代碼是否正確"
			}
			return fmt.Sprintf("❌ 五線譜計算失敗: %v", err)
		}
		return report
	case "/history", "紀錄":
		runs, err := s.Service.RecentRuns(historyLimit)
		if err != nil {
			return fmt.Sprintf("❌ 讀取紀錄失敗: %v", err)
		}
		return notifier.FormatRunHistory(runs)
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
